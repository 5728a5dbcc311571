package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/STTM-NSU/forex-cli/internal/archive"
	"github.com/STTM-NSU/forex-cli/internal/chart"
	"github.com/STTM-NSU/forex-cli/internal/config"
	"github.com/STTM-NSU/forex-cli/internal/logger"
	"github.com/STTM-NSU/forex-cli/internal/postgres"
	"github.com/STTM-NSU/forex-cli/internal/server"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// OpenArchiveFunc connects to the candle archive. The returned closer
// releases the connection.
type OpenArchiveFunc func(ctx context.Context) (Archiver, io.Closer, error)

type app struct {
	broker Broker
	cfg    config.Config
	logger logger.Logger

	instrument string

	openArchive OpenArchiveFunc
	serve       func(ctx context.Context, addr string, page []byte) error
	openBrowser func(url string) error
	newID       func() string
	loc         *time.Location
}

func newApp(broker Broker, cfg config.Config, logger logger.Logger) *app {
	return &app{
		broker:      broker,
		cfg:         cfg,
		logger:      logger,
		instrument:  cfg.Instrument,
		openArchive: postgresArchive(logger),
		serve:       servePage,
		openBrowser: chart.Open,
		newID:       uuid.NewString,
		loc:         time.Local,
	}
}

// NewRootCommand builds the forex command tree over broker.
func NewRootCommand(broker Broker, cfg config.Config, logger logger.Logger) *cobra.Command {
	return newApp(broker, cfg, logger).rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "forex",
		Short:         "OANDA forex terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.instrument = strings.ToUpper(strings.TrimSpace(a.instrument))
			if !config.ValidInstrument(a.instrument) {
				return userErrorf("invalid instrument %q, expected something like EUR_USD", a.instrument)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.instrument, "instrument", "i", a.instrument, "instrument to use, e.g. EUR_USD")
	// read by main before the logger is built
	root.PersistentFlags().Bool("verbose", false, "debug logs to stderr")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UserInputError{Msg: err.Error()}
	})

	root.AddCommand(
		a.priceCommand(),
		a.summaryCommand(),
		a.ordersCommand(),
		a.pendingCommand(),
		a.orderCommand(),
		a.cancelCommand(),
		a.positionsCommand(),
		a.tradesCommand(),
		a.closeTradeCommand(),
		a.candlesCommand(),
		a.calendarCommand(),
		a.orderBookCommand(),
		a.positionBookCommand(),
		a.archiveCommand(),
	)

	return root
}

func servePage(ctx context.Context, addr string, page []byte) error {
	return server.NewHTTPServer(ctx, addr, server.PageHandler(page)).Run(ctx)
}

func postgresArchive(logger logger.Logger) OpenArchiveFunc {
	return func(ctx context.Context) (Archiver, io.Closer, error) {
		pgConfig := postgres.NewConfigFromEnv().Setup()
		logger.Debugf("connecting to postgres %s", pgConfig.Redacted())

		db, err := postgres.NewDB(ctx, pgConfig)
		if err != nil {
			return nil, nil, err
		}
		return archive.NewStore(db, logger), db, nil
	}
}
