package config

type LengthConfig struct {
	Length int `yaml:"length"`
}

type BollingerBandsConfig struct {
	Length    int     `yaml:"length"`
	Deviation float64 `yaml:"deviation"`
}

type MACDConfig struct {
	FastLength      int `yaml:"fast_length"`
	SlowLength      int `yaml:"slow_length"`
	SignalSmoothing int `yaml:"signal_smoothing"`
}

type StochConfig struct {
	KLength int `yaml:"k_length"`
	DLength int `yaml:"d_length"`
}

type IndicatorsConfig struct {
	ADX            LengthConfig         `yaml:"adx"`
	Aroon          LengthConfig         `yaml:"aroon"`
	CCI            LengthConfig         `yaml:"cci"`
	BollingerBands BollingerBandsConfig `yaml:"bollinger_bands"`
	EMA            LengthConfig         `yaml:"ema"`
	FWMA           LengthConfig         `yaml:"fwma"`
	RSI            LengthConfig         `yaml:"rsi"`
	MACD           MACDConfig           `yaml:"macd"`
	SMA            LengthConfig         `yaml:"sma"`
	Stoch          StochConfig          `yaml:"stoch"`
}

func (c *IndicatorsConfig) Setup() {
	if c.ADX.Length <= 0 {
		c.ADX.Length = 14
	}
	if c.Aroon.Length <= 0 {
		c.Aroon.Length = 14
	}
	if c.CCI.Length <= 0 {
		c.CCI.Length = 20
	}

	if c.BollingerBands.Length <= 0 {
		c.BollingerBands.Length = 5
	}
	if c.BollingerBands.Deviation <= 0 {
		c.BollingerBands.Deviation = 2
	}

	if c.EMA.Length <= 0 {
		c.EMA.Length = 10
	}
	if c.FWMA.Length <= 0 {
		c.FWMA.Length = 10
	}
	if c.RSI.Length <= 0 {
		c.RSI.Length = 14
	}

	if c.MACD.SignalSmoothing <= 0 {
		c.MACD.SignalSmoothing = 9
	}
	if c.MACD.SlowLength <= 0 {
		c.MACD.SlowLength = 26
	}
	if c.MACD.FastLength <= 0 {
		c.MACD.FastLength = 12
	}

	if c.SMA.Length <= 0 {
		c.SMA.Length = 10
	}
	if c.Stoch.KLength <= 0 {
		c.Stoch.KLength = 14
	}
	if c.Stoch.DLength <= 0 {
		c.Stoch.DLength = 3
	}
}
