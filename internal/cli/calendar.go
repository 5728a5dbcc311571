package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/STTM-NSU/forex-cli/internal/candles"
	"github.com/STTM-NSU/forex-cli/internal/model"
	"github.com/spf13/cobra"
)

const (
	_secondsPerDay = 86400
	_indexUnit     = "Index"
)

func (a *app) calendarCommand() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show upcoming economic calendar events for the instrument",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return userErrorf("days must be positive")
			}

			// a negative period selects events ahead of now
			events, err := a.broker.Calendar(cmd.Context(), a.instrument, -days*_secondsPerDay)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, e := range events {
				a.printEvent(w, e)
				fmt.Fprintln(w, separator)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 7, "number of days ahead to show")
	return cmd
}

func (a *app) printEvent(w io.Writer, e model.CalendarEvent) {
	withUnit := func(v string) string {
		if e.Unit == _indexUnit {
			return v
		}
		return v + e.Unit
	}

	if e.Title != nil {
		fmt.Fprintf(w, "Title: %s\n", *e.Title)
	}
	if e.Timestamp != nil {
		fmt.Fprintf(w, "Time: %s\n", time.Unix(*e.Timestamp, 0).In(a.loc).Format(candles.TimeLayout))
	}
	if e.Impact != nil {
		fmt.Fprintf(w, "Impact: %d\n", *e.Impact)
	}
	if e.Forecast != nil {
		fmt.Fprintf(w, "Forecast: %s\n", withUnit(*e.Forecast))
	}
	if e.Market != nil {
		fmt.Fprintf(w, "Market Forecast: %s\n", withUnit(*e.Market))
	}
	if e.Currency != nil {
		fmt.Fprintf(w, "Currency: %s\n", *e.Currency)
	}
	if e.Region != nil {
		fmt.Fprintf(w, "Region: %s\n", *e.Region)
	}
	if e.Actual != nil {
		fmt.Fprintf(w, "Actual: %s\n", withUnit(*e.Actual))
	}
	if e.Previous != nil {
		fmt.Fprintf(w, "Previous: %s\n", withUnit(*e.Previous))
	}
}
