package cli

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/STTM-NSU/forex-cli/internal/candles"
	"github.com/STTM-NSU/forex-cli/internal/chart"
	"github.com/STTM-NSU/forex-cli/internal/config"
	"github.com/STTM-NSU/forex-cli/internal/indicator"
	"github.com/STTM-NSU/forex-cli/internal/model"
	"github.com/spf13/cobra"
)

// candlesQuery holds the flags shared by candles and archive.
type candlesQuery struct {
	count       int
	granularity string
	price       string
}

func (q *candlesQuery) register(cmd *cobra.Command, cfg config.CandlesConfig) {
	cmd.Flags().IntVarP(&q.count, "count", "c", cfg.Count, "number of candles, at most 5000")
	cmd.Flags().StringVarP(&q.granularity, "granularity", "g", cfg.Granularity, "candle granularity, e.g. M5, H1, D")
	cmd.Flags().StringVarP(&q.price, "price", "p", cfg.Price, "price component: M (mid), B (bid) or A (ask)")
}

func (a *app) validateQuery(q candlesQuery) (model.CandlesQuery, candles.PriceComponent, error) {
	if q.count <= 0 {
		return model.CandlesQuery{}, "", userErrorf("count must be positive")
	}
	if q.count > config.MaxCandlesCount {
		a.logger.Warnf("count %d is above the broker limit, using %d", q.count, config.MaxCandlesCount)
		q.count = config.MaxCandlesCount
	}
	if !config.ValidGranularity(q.granularity) {
		return model.CandlesQuery{}, "", userErrorf("unknown granularity %q", q.granularity)
	}
	component, err := candles.ParsePriceComponent(q.price)
	if err != nil {
		return model.CandlesQuery{}, "", userErrorf("%s", err)
	}

	return model.CandlesQuery{
		Instrument:  a.instrument,
		Granularity: q.granularity,
		Count:       q.count,
		Price:       string(component),
	}, component, nil
}

func (a *app) fetchTable(cmd *cobra.Command, q candlesQuery) (candles.Table, error) {
	query, component, err := a.validateQuery(q)
	if err != nil {
		return candles.Table{}, err
	}

	resp, err := a.broker.Candles(cmd.Context(), query)
	if err != nil {
		return candles.Table{}, err
	}

	table, err := candles.Normalize(resp.Candles, component)
	if err != nil {
		return candles.Table{}, fmt.Errorf("%w: can't normalize candles", err)
	}
	a.logger.Debugf("normalized %d %s %s candles", table.Len(), a.instrument, query.Granularity)
	return table, nil
}

func (a *app) candlesCommand() *cobra.Command {
	var (
		q          candlesQuery
		sel        indicator.Selection
		out        chartFlags
		printRows  bool
		printASCII bool
	)
	cmd := &cobra.Command{
		Use:   "candles",
		Short: "Show candles with optional indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.fetchTable(cmd, q)
			if err != nil {
				return err
			}

			if err := candles.Stage(a.cfg.Candles.StagingFile, table); err != nil {
				return err
			}
			frame, err := candles.LoadFrame(a.cfg.Candles.StagingFile)
			if err != nil {
				return err
			}
			data, err := indicator.FromFrame(frame)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if printRows {
				rows := make([][]string, 0, table.Len())
				for _, r := range table.Rows {
					rows = append(rows, r.Record())
				}
				printTable(w, candles.Header, rows)
			}

			title := fmt.Sprintf("%s %s", a.instrument, q.granularity)
			if printASCII {
				fmt.Fprintln(w, chart.ASCII(data.Close, a.cfg.Chart.ASCIIHeight, title))
			}

			path := out.out
			if path == "" && out.serve == "" && !printRows && !printASCII {
				path = a.chartPath(fmt.Sprintf("%s_%s_candles.html", a.instrument, q.granularity))
			}
			if path == "" && out.serve == "" {
				return nil
			}

			overlays := indicator.Build(data, sel, a.cfg.Indicators)
			var page bytes.Buffer
			if err := chart.Candles(&page, title, data, overlays, a.cfg.Chart); err != nil {
				return err
			}
			return a.publish(cmd, page.Bytes(), path, out)
		},
	}

	q.register(cmd, a.cfg.Candles)
	flags := cmd.Flags()
	flags.BoolVarP(&sel.AD, "ad", "a", false, "accumulation/distribution")
	flags.BoolVarP(&sel.ADX, "adx", "A", false, "average directional index")
	flags.BoolVarP(&sel.BBands, "bollinger-bands", "b", false, "bollinger bands")
	flags.BoolVarP(&sel.CCI, "cci", "C", false, "commodity channel index")
	flags.BoolVarP(&sel.EMA, "ema", "e", false, "exponential moving average")
	flags.BoolVarP(&sel.FWMA, "fwma", "f", false, "fibonacci weighted moving average")
	flags.BoolVarP(&sel.MACD, "macd", "m", false, "moving average convergence divergence")
	flags.BoolVarP(&sel.OBV, "obv", "o", false, "on balance volume")
	flags.BoolVarP(&sel.RSI, "rsi", "r", false, "relative strength index")
	flags.BoolVarP(&sel.Aroon, "aroon", "R", false, "aroon")
	flags.BoolVarP(&sel.SMA, "sma", "s", false, "simple moving average")
	flags.BoolVarP(&sel.Stoch, "stoch", "S", false, "stochastic oscillator")
	flags.BoolVarP(&sel.VWAP, "vwap", "v", false, "volume weighted average price")
	flags.BoolVar(&printRows, "table", false, "print the candles as a table")
	flags.BoolVar(&printASCII, "ascii", false, "plot close prices in the terminal")
	out.register(cmd)
	return cmd
}

func (a *app) archiveCommand() *cobra.Command {
	var (
		q    candlesQuery
		show bool
	)
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Fetch candles and store them in postgres",
		Long: "Fetch candles and store them in postgres.\n" +
			"With --show, print the most recent archived candles instead of fetching.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if show {
				query, _, err := a.validateQuery(q)
				if err != nil {
					return err
				}
				return a.withArchive(cmd, func(store Archiver) error {
					return a.showArchived(cmd, store, query)
				})
			}

			table, err := a.fetchTable(cmd, q)
			if err != nil {
				return err
			}
			return a.withArchive(cmd, func(store Archiver) error {
				n, err := store.Save(cmd.Context(), a.instrument, q.granularity, table)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Archived %d %s %s candles\n", n, a.instrument, q.granularity)
				return nil
			})
		},
	}
	q.register(cmd, a.cfg.Candles)
	cmd.Flags().BoolVar(&show, "show", false, "print the most recent archived candles")
	return cmd
}

// withArchive opens the archive, makes sure the schema exists and closes the
// connection once fn returns.
func (a *app) withArchive(cmd *cobra.Command, fn func(store Archiver) error) error {
	store, closer, err := a.openArchive(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			a.logger.Warnf("%s: can't close archive", err)
		}
	}()

	if err := store.EnsureSchema(cmd.Context()); err != nil {
		return err
	}
	return fn(store)
}

func (a *app) showArchived(cmd *cobra.Command, store Archiver, q model.CandlesQuery) error {
	stored, err := store.Load(cmd.Context(), q.Instrument, q.Granularity)
	if err != nil {
		return err
	}
	if len(stored) > q.Count {
		stored = stored[len(stored)-q.Count:]
	}

	rows := make([][]string, 0, len(stored))
	for _, c := range stored {
		rows = append(rows, []string{
			c.Ts.UTC().Format(candles.TimeLayout),
			c.Open.String(),
			c.High.String(),
			c.Low.String(),
			c.Close.String(),
			strconv.FormatInt(c.Volume, 10),
		})
	}
	printTable(cmd.OutOrStdout(), candles.Header, rows)
	return nil
}
