package indicator

import (
	"math"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

// newSeries converts rows to a techan series. Periods are synthetic one
// second slots so AddCandle never rejects a row for a repeated or
// out-of-order timestamp.
func newSeries(d Data) *techan.TimeSeries {
	ts := techan.NewTimeSeries()
	start := time.Unix(0, 0).UTC()
	for i := range d.Close {
		c := techan.NewCandle(techan.NewTimePeriod(start.Add(time.Duration(i)*time.Second), time.Second))
		c.OpenPrice = big.NewDecimal(d.Open[i])
		c.MaxPrice = big.NewDecimal(d.High[i])
		c.MinPrice = big.NewDecimal(d.Low[i])
		c.ClosePrice = big.NewDecimal(d.Close[i])
		c.Volume = big.NewDecimal(d.Volume[i])
		ts.AddCandle(c)
	}
	return ts
}

func techanClose(ts *techan.TimeSeries) techan.Indicator {
	return techan.NewClosePriceIndicator(ts)
}

// collect evaluates ind for every row, leaving the first warmup rows NaN.
func collect(ind techan.Indicator, n, warmup int) []float64 {
	out := nanSlice(n)
	for i := warmup; i < n; i++ {
		out[i] = calculate(ind, i)
	}
	return out
}

// calculate maps the big.Float panic on 0/0 (flat windows) to NaN.
func calculate(ind techan.Indicator, i int) (v float64) {
	defer func() {
		if recover() != nil {
			v = math.NaN()
		}
	}()
	v = ind.Calculate(i).Float()
	if math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func sma(closes techan.Indicator, n, window int) []float64 {
	return collect(techan.NewSimpleMovingAverage(closes, window), n, window-1)
}

func ema(closes techan.Indicator, n, window int) []float64 {
	return collect(techan.NewEMAIndicator(closes, window), n, window-1)
}

func rsi(closes techan.Indicator, n, window int) []float64 {
	return collect(techan.NewRelativeStrengthIndexIndicator(closes, window), n, window)
}

func bollinger(closes techan.Indicator, n, window int, sigma float64) (lower, mid, upper []float64) {
	lower = collect(techan.NewBollingerLowerBandIndicator(closes, window, sigma), n, window-1)
	mid = collect(techan.NewSimpleMovingAverage(closes, window), n, window-1)
	upper = collect(techan.NewBollingerUpperBandIndicator(closes, window, sigma), n, window-1)
	return lower, mid, upper
}

func macd(closes techan.Indicator, n, fast, slow, signal int) (line, hist, sig []float64) {
	m := techan.NewMACDIndicator(closes, fast, slow)
	h := techan.NewMACDHistogramIndicator(m, signal)

	line = collect(m, n, slow-1)
	hist = collect(h, n, slow+signal-2)
	sig = nanSlice(n)
	for i := range sig {
		if !math.IsNaN(hist[i]) {
			sig[i] = line[i] - hist[i]
		}
	}
	return line, hist, sig
}

func cci(ts *techan.TimeSeries, window int) []float64 {
	return collect(techan.NewCCIIndicator(ts, window), len(ts.Candles), window-1)
}

func aroon(ts *techan.TimeSeries, window int) (up, down []float64) {
	n := len(ts.Candles)
	up = collect(techan.NewAroonUpIndicator(techan.NewHighPriceIndicator(ts), window), n, window-1)
	down = collect(techan.NewAroonDownIndicator(techan.NewLowPriceIndicator(ts), window), n, window-1)
	return up, down
}

func stoch(ts *techan.TimeSeries, kWindow, dWindow int) (k, d []float64) {
	n := len(ts.Candles)
	fast := techan.NewFastStochasticIndicator(ts, kWindow)
	k = collect(fast, n, kWindow-1)
	d = collect(techan.NewSlowStochasticIndicator(fast, dWindow), n, kWindow+dWindow-2)
	return k, d
}
