package indicator

import (
	"fmt"
	"math"
	"time"

	"github.com/STTM-NSU/forex-cli/internal/candles"
	"github.com/STTM-NSU/forex-cli/internal/config"
	dataframe "github.com/rocketlaunchr/dataframe-go"
)

// Panel is the chart panel an overlay is drawn on.
type Panel int

const (
	PanelPrice Panel = iota
	PanelVolume
	PanelRSI
	PanelOscillator
)

// Line is one plotted series, aligned with Data rows. Warm-up rows are NaN.
type Line struct {
	Name   string
	Values []float64
}

type Overlay struct {
	Name  string
	Panel Panel
	Lines []Line
}

// Selection holds the requested indicators.
type Selection struct {
	AD     bool
	ADX    bool
	Aroon  bool
	CCI    bool
	BBands bool
	EMA    bool
	FWMA   bool
	RSI    bool
	MACD   bool
	OBV    bool
	SMA    bool
	Stoch  bool
	VWAP   bool
}

// Data is the column view of a candle frame.
type Data struct {
	Times  []time.Time
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

func (d Data) Len() int {
	return len(d.Close)
}

func FromFrame(frame *dataframe.DataFrame) (Data, error) {
	var (
		d   Data
		err error
	)
	if d.Times, err = candles.Times(frame); err != nil {
		return Data{}, fmt.Errorf("%w: can't read times", err)
	}
	cols := []*[]float64{&d.Open, &d.High, &d.Low, &d.Close}
	for i, name := range candles.Header[1:5] {
		if *cols[i], err = candles.Floats(frame, name); err != nil {
			return Data{}, fmt.Errorf("%w: can't read %s", err, name)
		}
	}
	if d.Volume, err = candles.Volumes(frame); err != nil {
		return Data{}, fmt.Errorf("%w: can't read volume", err)
	}
	return d, nil
}

// Build computes the selected overlays in a fixed order:
// ad, adx, aroon, cci, bbands, ema, fwma, rsi, macd, obv, sma, stoch, vwap.
func Build(d Data, sel Selection, cfg config.IndicatorsConfig) []Overlay {
	if d.Len() == 0 {
		return nil
	}

	ts := newSeries(d)
	closes := techanClose(ts)
	n := d.Len()

	var out []Overlay
	if sel.AD {
		out = append(out, Overlay{Name: "AD", Panel: PanelOscillator, Lines: []Line{
			{Name: "AD", Values: AccumulationDistribution(d.High, d.Low, d.Close, d.Volume)},
		}})
	}
	if sel.ADX {
		l := cfg.ADX.Length
		adx, dmp, dmn := ADX(d.High, d.Low, d.Close, l)
		out = append(out, Overlay{Name: "ADX", Panel: PanelOscillator, Lines: []Line{
			{Name: fmt.Sprintf("ADX_%d", l), Values: adx},
			{Name: fmt.Sprintf("DMP_%d", l), Values: dmp},
			{Name: fmt.Sprintf("DMN_%d", l), Values: dmn},
		}})
	}
	if sel.Aroon {
		l := cfg.Aroon.Length
		up, down := aroon(ts, l)
		osc := make([]float64, n)
		for i := range osc {
			osc[i] = up[i] - down[i]
		}
		out = append(out, Overlay{Name: "AROON", Panel: PanelOscillator, Lines: []Line{
			{Name: fmt.Sprintf("AROOND_%d", l), Values: down},
			{Name: fmt.Sprintf("AROONU_%d", l), Values: up},
			{Name: fmt.Sprintf("AROONOSC_%d", l), Values: osc},
		}})
	}
	if sel.CCI {
		l := cfg.CCI.Length
		out = append(out, Overlay{Name: "CCI", Panel: PanelOscillator, Lines: []Line{
			{Name: fmt.Sprintf("CCI_%d", l), Values: cci(ts, l)},
		}})
	}
	if sel.BBands {
		bb := cfg.BollingerBands
		lower, mid, upper := bollinger(closes, n, bb.Length, bb.Deviation)
		out = append(out, Overlay{Name: "BBANDS", Panel: PanelPrice, Lines: []Line{
			{Name: fmt.Sprintf("BBL_%d_%.1f", bb.Length, bb.Deviation), Values: lower},
			{Name: fmt.Sprintf("BBM_%d_%.1f", bb.Length, bb.Deviation), Values: mid},
			{Name: fmt.Sprintf("BBU_%d_%.1f", bb.Length, bb.Deviation), Values: upper},
		}})
	}
	if sel.EMA {
		l := cfg.EMA.Length
		out = append(out, Overlay{Name: "EMA", Panel: PanelPrice, Lines: []Line{
			{Name: fmt.Sprintf("EMA_%d", l), Values: ema(closes, n, l)},
		}})
	}
	if sel.FWMA {
		l := cfg.FWMA.Length
		out = append(out, Overlay{Name: "FWMA", Panel: PanelPrice, Lines: []Line{
			{Name: fmt.Sprintf("FWMA_%d", l), Values: FWMA(d.Close, l)},
		}})
	}
	if sel.RSI {
		l := cfg.RSI.Length
		out = append(out, Overlay{Name: "RSI", Panel: PanelRSI, Lines: []Line{
			{Name: fmt.Sprintf("RSI_%d", l), Values: rsi(closes, n, l)},
		}})
	}
	if sel.MACD {
		m := cfg.MACD
		line, hist, signal := macd(closes, n, m.FastLength, m.SlowLength, m.SignalSmoothing)
		suffix := fmt.Sprintf("%d_%d_%d", m.FastLength, m.SlowLength, m.SignalSmoothing)
		out = append(out, Overlay{Name: "MACD", Panel: PanelOscillator, Lines: []Line{
			{Name: "MACD_" + suffix, Values: line},
			{Name: "MACDh_" + suffix, Values: hist},
			{Name: "MACDs_" + suffix, Values: signal},
		}})
	}
	if sel.OBV {
		out = append(out, Overlay{Name: "OBV", Panel: PanelOscillator, Lines: []Line{
			{Name: "OBV", Values: OBV(d.Close, d.Volume)},
		}})
	}
	if sel.SMA {
		l := cfg.SMA.Length
		out = append(out, Overlay{Name: "SMA", Panel: PanelPrice, Lines: []Line{
			{Name: fmt.Sprintf("SMA_%d", l), Values: sma(closes, n, l)},
		}})
	}
	if sel.Stoch {
		s := cfg.Stoch
		k, dl := stoch(ts, s.KLength, s.DLength)
		out = append(out, Overlay{Name: "STOCH", Panel: PanelOscillator, Lines: []Line{
			{Name: fmt.Sprintf("STOCHk_%d_%d", s.KLength, s.DLength), Values: k},
			{Name: fmt.Sprintf("STOCHd_%d_%d", s.KLength, s.DLength), Values: dl},
		}})
	}
	if sel.VWAP {
		out = append(out, Overlay{Name: "VWAP", Panel: PanelPrice, Lines: []Line{
			{Name: "VWAP_D", Values: VWAP(d.Times, d.High, d.Low, d.Close, d.Volume)},
		}})
	}

	return out
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
