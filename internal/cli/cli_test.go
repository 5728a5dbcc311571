package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/STTM-NSU/forex-cli/internal/config"
	"github.com/STTM-NSU/forex-cli/internal/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{
		Instrument: "eur_usd",
		Oanda:      config.Oanda{Token: "token", AccountID: "101-001-1234567-001"},
	}
	require.NoError(t, cfg.ValidateAndSetup())

	dir := t.TempDir()
	cfg.Candles.StagingFile = filepath.Join(dir, ".candles.csv")
	cfg.Chart.OutputDir = dir
	return cfg
}

func newTestApp(t *testing.T) (*app, *MockBroker) {
	t.Helper()
	broker := NewMockBroker(gomock.NewController(t))
	a := newApp(broker, testConfig(t), logger.NewNop())
	a.loc = time.UTC
	a.newID = func() string { return "6f1c7d0e-7f3b-4c1a-9a51-2f4d9c7b8e10" }
	a.openBrowser = func(string) error { return nil }
	a.serve = func(context.Context, string, []byte) error {
		t.Fatal("unexpected serve")
		return nil
	}
	return a, broker
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := a.rootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}
