package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/STTM-NSU/forex-cli/internal/candles"
	"github.com/STTM-NSU/forex-cli/internal/config"
	"github.com/STTM-NSU/forex-cli/internal/indicator"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// missing is how echarts expects a gap in a series.
const missing = "-"

// Candles renders a page with the candlestick chart and its price overlays,
// a volume chart and one line chart per oscillator panel.
func Candles(w io.Writer, title string, d indicator.Data, overlays []indicator.Overlay, cfg config.ChartConfig) error {
	x := make([]string, d.Len())
	for i, t := range d.Times {
		x[i] = t.Format(candles.TimeLayout)
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(globalOpts(title, cfg)...)
	items := make([]opts.KlineData, d.Len())
	for i := range items {
		items[i] = opts.KlineData{Value: [4]float64{d.Open[i], d.Close[i], d.Low[i], d.High[i]}}
	}
	kline.SetXAxis(x).AddSeries(title, items)

	volume := charts.NewBar()
	volume.SetGlobalOptions(globalOpts("Volume", cfg)...)
	bars := make([]opts.BarData, d.Len())
	for i, v := range d.Volume {
		bars[i] = opts.BarData{Value: v}
	}
	volume.SetXAxis(x).AddSeries("Volume", bars)

	panels := map[indicator.Panel]*charts.Line{}
	var order []indicator.Panel
	for _, o := range overlays {
		if o.Panel == indicator.PanelPrice {
			line := charts.NewLine()
			line.SetXAxis(x)
			addLines(line, o.Lines)
			kline.Overlap(line)
			continue
		}

		line, ok := panels[o.Panel]
		if !ok {
			line = charts.NewLine()
			line.SetGlobalOptions(globalOpts(panelTitle(o.Panel), cfg)...)
			line.SetXAxis(x)
			panels[o.Panel] = line
			order = append(order, o.Panel)
		}
		addLines(line, o.Lines)
	}

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(kline, volume)
	for _, p := range order {
		page.AddCharts(panels[p])
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("%w: can't render candles chart", err)
	}
	return nil
}

func globalOpts(title string, cfg config.ChartConfig) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: cfg.Width, Height: cfg.Height}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Min: "dataMin", Max: "dataMax"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	}
}

func addLines(line *charts.Line, lines []indicator.Line) {
	for _, l := range lines {
		data := make([]opts.LineData, len(l.Values))
		for i, v := range l.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				data[i] = opts.LineData{Value: missing}
				continue
			}
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(l.Name, data)
	}
}

func panelTitle(p indicator.Panel) string {
	switch p {
	case indicator.PanelRSI:
		return "RSI"
	case indicator.PanelVolume:
		return "Volume"
	default:
		return "Oscillators"
	}
}
