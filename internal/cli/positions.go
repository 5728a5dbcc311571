package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) positionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "List open positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := a.broker.OpenPositions(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range positions {
				fmt.Fprintf(w, "Instrument: %s\n\n", p.Instrument)
				fmt.Fprintf(w, "Long Units: %s\n", p.Long.Units)
				fmt.Fprintf(w, "Total Long P/L: %s\n", p.Long.PL)
				fmt.Fprintf(w, "Long Unrealized P/L: %s\n\n", p.Long.UnrealizedPL)
				fmt.Fprintf(w, "Short Units: %s\n", p.Short.Units)
				fmt.Fprintf(w, "Total Short P/L: %s\n", p.Short.PL)
				fmt.Fprintf(w, "Short Unrealized P/L: %s\n", p.Short.UnrealizedPL)
				fmt.Fprintln(w, separator+"\n")
			}
			return nil
		},
	}
}

func (a *app) tradesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trades",
		Short: "List open trades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trades, err := a.broker.OpenTrades(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(trades))
			for _, t := range trades {
				rows = append(rows, []string{t.ID, t.Instrument, t.InitialUnits, t.CurrentUnits, t.Price, t.UnrealizedPL})
			}
			printTable(cmd.OutOrStdout(),
				[]string{"ID", "Instrument", "Initial Units", "Current Units", "Entry Price", "Unrealized P/L"}, rows)
			return nil
		},
	}
}

func (a *app) closeTradeCommand() *cobra.Command {
	var id, units string
	cmd := &cobra.Command{
		Use:   "close-trade",
		Short: "Close an open trade, fully or partially",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return userErrorf("trade id is required")
			}
			if units != "" && !strings.EqualFold(units, "ALL") {
				u, err := decimal.NewFromString(units)
				if err != nil || !u.IsPositive() {
					return userErrorf("units must be ALL or a positive number, got %q", units)
				}
			}

			resp, err := a.broker.CloseTrade(cmd.Context(), id, strings.ToUpper(units))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Trade %s closed by order %s\n", id, resp.OrderCreateTransaction.ID)
			if fill := resp.OrderFillTransaction; fill != nil {
				fmt.Fprintf(w, "Units: %s\n", fill.Units)
				fmt.Fprintf(w, "Price: %s\n", fill.Price)
				fmt.Fprintf(w, "P/L: %s\n", fill.PL)
			}
			if cancel := resp.OrderCancelTransaction; cancel != nil {
				fmt.Fprintf(w, "Cancelled: %s\n", cancel.Reason)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "trade id")
	cmd.Flags().StringVarP(&units, "units", "u", "", "units to close, ALL by default")
	return cmd
}
