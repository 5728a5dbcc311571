package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/STTM-NSU/forex-cli/internal/config"
	"github.com/STTM-NSU/forex-cli/internal/model"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shopspring/decimal"
)

var ErrEmptyBook = errors.New("book has no buckets")

// Level is one plotted book bucket. Short is negated so longs and shorts
// extend to opposite sides of the axis.
type Level struct {
	Price string
	Long  float64
	Short float64
}

// BookLevels picks window buckets centered on the bucket nearest to the
// book's current price.
func BookLevels(book model.Book, window int) ([]Level, error) {
	if len(book.Buckets) == 0 {
		return nil, ErrEmptyBook
	}

	current, err := decimal.NewFromString(book.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: bad book price %q", err, book.Price)
	}

	nearest := 0
	var best decimal.Decimal
	for i, b := range book.Buckets {
		p, err := decimal.NewFromString(b.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: bad bucket price %q", err, b.Price)
		}
		if dist := p.Sub(current).Abs(); i == 0 || dist.LessThan(best) {
			nearest, best = i, dist
		}
	}

	lo, hi := windowBounds(len(book.Buckets), nearest, window)
	levels := make([]Level, 0, hi-lo)
	for _, b := range book.Buckets[lo:hi] {
		long, err := decimal.NewFromString(b.LongCountPercent)
		if err != nil {
			return nil, fmt.Errorf("%w: bad long percent at %s", err, b.Price)
		}
		short, err := decimal.NewFromString(b.ShortCountPercent)
		if err != nil {
			return nil, fmt.Errorf("%w: bad short percent at %s", err, b.Price)
		}
		levels = append(levels, Level{
			Price: b.Price,
			Long:  long.InexactFloat64(),
			Short: short.Neg().InexactFloat64(),
		})
	}
	return levels, nil
}

// windowBounds returns [lo, hi) of length min(window, n) around center.
func windowBounds(n, center, window int) (int, int) {
	if window <= 0 || window >= n {
		return 0, n
	}
	lo := center - window/2
	if lo < 0 {
		lo = 0
	}
	if lo+window > n {
		lo = n - window
	}
	return lo, lo + window
}

// Book renders levels as horizontal bars, longs green and shorts red.
func Book(w io.Writer, title string, levels []Level, cfg config.ChartConfig) error {
	prices := make([]string, len(levels))
	longs := make([]opts.BarData, len(levels))
	shorts := make([]opts.BarData, len(levels))
	for i, l := range levels {
		prices[i] = l.Price
		longs[i] = opts.BarData{Value: l.Long}
		shorts[i] = opts.BarData{Value: l.Short}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: cfg.Width, Height: cfg.Height}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Count Percent"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price"}),
	)
	bar.SetXAxis(prices).
		AddSeries("Long", longs,
			charts.WithBarChartOpts(opts.BarChart{Stack: "book"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "green"})).
		AddSeries("Short", shorts,
			charts.WithBarChartOpts(opts.BarChart{Stack: "book"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}))
	bar.XYReversal()

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("%w: can't render book chart", err)
	}
	return nil
}
