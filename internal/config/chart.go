package config

import "fmt"

var granularities = map[string]struct{}{
	"S5": {}, "S10": {}, "S15": {}, "S30": {},
	"M1": {}, "M2": {}, "M4": {}, "M5": {}, "M10": {}, "M15": {}, "M30": {},
	"H1": {}, "H2": {}, "H3": {}, "H4": {}, "H6": {}, "H8": {}, "H12": {},
	"D": {}, "W": {}, "M": {},
}

func ValidGranularity(g string) bool {
	_, ok := granularities[g]
	return ok
}

type CandlesConfig struct {
	Count       int    `yaml:"count"`
	Granularity string `yaml:"granularity"`
	Price       string `yaml:"price"`
	StagingFile string `yaml:"staging_file"`
}

const (
	_candlesCountDefault       = 180
	_candlesGranularityDefault = "D"
	_candlesPriceDefault       = "M"
	_stagingFileDefault        = ".candles.csv"

	MaxCandlesCount = 5000
)

func (c *CandlesConfig) Setup() error {
	if c.Count <= 0 {
		c.Count = _candlesCountDefault
	}
	if c.Count > MaxCandlesCount {
		c.Count = MaxCandlesCount
	}
	if c.Granularity == "" {
		c.Granularity = _candlesGranularityDefault
	}
	if !ValidGranularity(c.Granularity) {
		return fmt.Errorf("unknown granularity %q", c.Granularity)
	}
	if c.Price == "" {
		c.Price = _candlesPriceDefault
	}
	if c.StagingFile == "" {
		c.StagingFile = _stagingFileDefault
	}
	return nil
}

type ChartConfig struct {
	OutputDir   string `yaml:"output_dir"`
	Width       string `yaml:"width"`
	Height      string `yaml:"height"`
	ASCIIHeight int    `yaml:"ascii_height"`
}

func (c *ChartConfig) Setup() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Width == "" {
		c.Width = "1200px"
	}
	if c.Height == "" {
		c.Height = "500px"
	}
	if c.ASCIIHeight <= 0 {
		c.ASCIIHeight = 15
	}
}

// BooksConfig sets how many buckets around the current price are plotted.
type BooksConfig struct {
	OrderBookWindow    int `yaml:"order_book_window"`
	PositionBookWindow int `yaml:"position_book_window"`
}

func (c *BooksConfig) Setup() {
	if c.OrderBookWindow <= 0 {
		c.OrderBookWindow = 200
	}
	if c.PositionBookWindow <= 0 {
		c.PositionBookWindow = 196
	}
}
