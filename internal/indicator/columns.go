package indicator

import (
	"math"
	"time"
)

// AccumulationDistribution is the cumulative close location value times
// volume. Rows with high == low add nothing.
func AccumulationDistribution(high, low, closes, volume []float64) []float64 {
	out := make([]float64, len(closes))
	var acc float64
	for i := range closes {
		if hl := high[i] - low[i]; hl != 0 {
			acc += ((closes[i] - low[i]) - (high[i] - closes[i])) / hl * volume[i]
		}
		out[i] = acc
	}
	return out
}

// OBV adds volume on up closes and subtracts it on down closes. The first
// row counts as up.
func OBV(closes, volume []float64) []float64 {
	out := make([]float64, len(closes))
	var acc float64
	for i := range closes {
		switch {
		case i == 0 || closes[i] > closes[i-1]:
			acc += volume[i]
		case closes[i] < closes[i-1]:
			acc -= volume[i]
		}
		out[i] = acc
	}
	return out
}

// VWAP is the volume weighted typical price, anchored to each UTC day.
func VWAP(times []time.Time, high, low, closes, volume []float64) []float64 {
	out := make([]float64, len(closes))
	var (
		pv, vol float64
		day     time.Time
	)
	for i := range closes {
		d := times[i].UTC().Truncate(24 * time.Hour)
		if i == 0 || !d.Equal(day) {
			day, pv, vol = d, 0, 0
		}
		tp := (high[i] + low[i] + closes[i]) / 3
		pv += tp * volume[i]
		vol += volume[i]
		if vol == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = pv / vol
	}
	return out
}

// FWMA weights the last length closes by Fibonacci numbers, the most
// recent close getting the largest weight.
func FWMA(closes []float64, length int) []float64 {
	out := nanSlice(len(closes))
	if length <= 0 {
		return out
	}

	weights := make([]float64, length)
	a, b := 1.0, 1.0
	var sum float64
	for i := range weights {
		weights[i] = a
		sum += a
		a, b = b, a+b
	}
	for i := range weights {
		weights[i] /= sum
	}

	for i := length - 1; i < len(closes); i++ {
		var v float64
		for j, w := range weights {
			v += w * closes[i-length+1+j]
		}
		out[i] = v
	}
	return out
}

// ADX returns the average directional index with the +DI and -DI lines,
// all smoothed with Wilder's moving average.
func ADX(high, low, closes []float64, length int) (adx, dmp, dmn []float64) {
	n := len(closes)
	adx, dmp, dmn = nanSlice(n), nanSlice(n), nanSlice(n)
	if length <= 0 || n <= length {
		return adx, dmp, dmn
	}

	tr := make([]float64, n)
	plus := make([]float64, n)
	minus := make([]float64, n)
	for i := 1; i < n; i++ {
		tr[i] = math.Max(high[i]-low[i], math.Max(math.Abs(high[i]-closes[i-1]), math.Abs(low[i]-closes[i-1])))
		up, down := high[i]-high[i-1], low[i-1]-low[i]
		if up > down && up > 0 {
			plus[i] = up
		}
		if down > up && down > 0 {
			minus[i] = down
		}
	}

	atr := wilder(tr, length, 1)
	sp := wilder(plus, length, 1)
	sm := wilder(minus, length, 1)

	dx := nanSlice(n)
	for i := length; i < n; i++ {
		if atr[i] == 0 {
			continue
		}
		dmp[i] = 100 * sp[i] / atr[i]
		dmn[i] = 100 * sm[i] / atr[i]
		if s := dmp[i] + dmn[i]; s != 0 {
			dx[i] = 100 * math.Abs(dmp[i]-dmn[i]) / s
		}
	}

	smoothed := wilder(dx, length, length)
	copy(adx, smoothed)
	return adx, dmp, dmn
}

// wilder seeds with the mean of xs[from:from+length] and then applies
// s += (x - s) / length. Rows before the seed are NaN.
func wilder(xs []float64, length, from int) []float64 {
	out := nanSlice(len(xs))
	seed := from + length - 1
	if seed >= len(xs) {
		return out
	}

	var s float64
	for i := from; i <= seed; i++ {
		if math.IsNaN(xs[i]) {
			return out
		}
		s += xs[i]
	}
	s /= float64(length)
	out[seed] = s

	for i := seed + 1; i < len(xs); i++ {
		if math.IsNaN(xs[i]) {
			continue
		}
		s += (xs[i] - s) / float64(length)
		out[i] = s
	}
	return out
}
