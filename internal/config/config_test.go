package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("OANDA_TOKEN", "token")
	t.Setenv("OANDA_ACCOUNT", "101-001-1-001")
	t.Setenv("OANDA_ENVIRONMENT", "")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "EUR_USD", cfg.Instrument)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, Live, cfg.Oanda.Environment)
	assert.Equal(t, "https://api-fxtrade.oanda.com", cfg.Oanda.BaseURL())
	assert.Equal(t, 15*time.Second, cfg.Oanda.Timeout)
	assert.Equal(t, 180, cfg.Candles.Count)
	assert.Equal(t, "D", cfg.Candles.Granularity)
	assert.Equal(t, "M", cfg.Candles.Price)
	assert.Equal(t, ".candles.csv", cfg.Candles.StagingFile)
	assert.Equal(t, 200, cfg.Books.OrderBookWindow)
	assert.Equal(t, 196, cfg.Books.PositionBookWindow)
	assert.Equal(t, 20, cfg.Indicators.CCI.Length)
	assert.Equal(t, 9, cfg.Indicators.MACD.SignalSmoothing)
}

func TestLoadFile(t *testing.T) {
	setCredentials(t)
	path := writeTempConfig(t, `
log_level: debug
instrument: gbp_usd
oanda:
  environment: practice
  timeout: 5s
candles:
  count: 9000
  granularity: H4
chart:
  output_dir: charts
indicators:
  rsi:
    length: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "GBP_USD", cfg.Instrument)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://api-fxpractice.oanda.com", cfg.Oanda.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.Oanda.Timeout)
	assert.Equal(t, MaxCandlesCount, cfg.Candles.Count)
	assert.Equal(t, "H4", cfg.Candles.Granularity)
	assert.Equal(t, "charts", cfg.Chart.OutputDir)
	assert.Equal(t, 7, cfg.Indicators.RSI.Length)
	assert.Equal(t, 10, cfg.Indicators.SMA.Length)
}

func TestLoadURLOverride(t *testing.T) {
	setCredentials(t)
	path := writeTempConfig(t, "oanda:\n  url: http://127.0.0.1:9999\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Oanda.BaseURL())
}

func TestLoadWithoutCredentials(t *testing.T) {
	t.Setenv("OANDA_TOKEN", "")
	t.Setenv("OANDA_ACCOUNT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Oanda.CheckCredentials(), ErrMissingCredentials)
}

func TestCheckCredentials(t *testing.T) {
	err := Oanda{AccountID: "101"}.CheckCredentials()
	require.ErrorIs(t, err, ErrMissingCredentials)
	assert.Contains(t, err.Error(), "OANDA_TOKEN")

	err = Oanda{Token: "t"}.CheckCredentials()
	require.ErrorIs(t, err, ErrMissingCredentials)
	assert.Contains(t, err.Error(), "OANDA_ACCOUNT")

	assert.NoError(t, Oanda{Token: "t", AccountID: "101"}.CheckCredentials())
}

func TestLoadRejectsBadValues(t *testing.T) {
	setCredentials(t)

	for name, content := range map[string]string{
		"environment": "oanda:\n  environment: demo\n",
		"granularity": "candles:\n  granularity: H5\n",
		"instrument":  "instrument: EURUSD\n",
		"yaml":        "oanda: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestValidGranularity(t *testing.T) {
	assert.True(t, ValidGranularity("D"))
	assert.True(t, ValidGranularity("M15"))
	assert.False(t, ValidGranularity("d"))
	assert.False(t, ValidGranularity("H5"))
}

func TestValidInstrument(t *testing.T) {
	assert.True(t, ValidInstrument("EUR_USD"))
	assert.True(t, ValidInstrument("SPX500_USD"))
	assert.False(t, ValidInstrument("eur_usd"))
	assert.False(t, ValidInstrument("EURUSD"))
	assert.False(t, ValidInstrument(""))
}
