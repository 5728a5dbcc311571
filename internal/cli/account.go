package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) priceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "price",
		Short: "Show the current bid and ask",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := a.broker.Pricing(cmd.Context(), a.instrument)
			if err != nil {
				return err
			}
			if len(price.Bids) == 0 || len(price.Asks) == 0 {
				return errors.New("no quotes for " + a.instrument)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s Bid: %s\n", a.instrument, price.Bids[0].Price)
			fmt.Fprintf(w, "%s Ask: %s\n", a.instrument, price.Asks[0].Price)
			return nil
		},
	}
}

func (a *app) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the account summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := a.broker.AccountSummary(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Balance: %s\n", acc.Balance)
			fmt.Fprintf(w, "NAV: %s\n", acc.NAV)
			fmt.Fprintf(w, "Unrealized P/L:  %s\n", acc.UnrealizedPL)
			fmt.Fprintf(w, "Total P/L: %s\n", acc.PL)
			fmt.Fprintf(w, "Open Trade Count: %d\n", acc.OpenTradeCount)
			fmt.Fprintf(w, "Margin Available:  $%s\n", acc.MarginAvailable)
			fmt.Fprintf(w, "Margin Used: $%s\n", acc.MarginUsed)
			fmt.Fprintf(w, "Margin Closeout %s\n", acc.MarginCloseoutNAV)
			fmt.Fprintf(w, "Margin Closeout Percent: %s\n", acc.MarginCloseoutPercent)
			fmt.Fprintf(w, "Margin Closeout Position Value: %s\n", acc.MarginCloseoutPositionValue)
			return nil
		},
	}
}
