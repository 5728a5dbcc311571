package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/STTM-NSU/forex-cli/internal/chart"
	"github.com/STTM-NSU/forex-cli/internal/model"
	"github.com/spf13/cobra"
)

type bookKind struct {
	use    string
	title  string
	window func(a *app) int
	fetch  func(a *app, ctx context.Context) (model.Book, error)
}

var (
	orderBook = bookKind{
		use:    "orderbook",
		title:  "Order Book",
		window: func(a *app) int { return a.cfg.Books.OrderBookWindow },
		fetch: func(a *app, ctx context.Context) (model.Book, error) {
			return a.broker.OrderBook(ctx, a.instrument)
		},
	}
	positionBook = bookKind{
		use:    "positionbook",
		title:  "Position Book",
		window: func(a *app) int { return a.cfg.Books.PositionBookWindow },
		fetch: func(a *app, ctx context.Context) (model.Book, error) {
			return a.broker.PositionBook(ctx, a.instrument)
		},
	}
)

func (a *app) orderBookCommand() *cobra.Command {
	return a.bookCommand(orderBook)
}

func (a *app) positionBookCommand() *cobra.Command {
	return a.bookCommand(positionBook)
}

func (a *app) bookCommand(kind bookKind) *cobra.Command {
	var out chartFlags
	cmd := &cobra.Command{
		Use:   kind.use,
		Short: "Plot the " + strings.ToLower(kind.title) + " around the current price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := kind.fetch(a, cmd.Context())
			if err != nil {
				return err
			}

			levels, err := chart.BookLevels(book, kind.window(a))
			if err != nil {
				return err
			}

			var page bytes.Buffer
			title := fmt.Sprintf("%s %s", a.instrument, kind.title)
			if err := chart.Book(&page, title, levels, a.cfg.Chart); err != nil {
				return err
			}

			path := out.out
			if path == "" && out.serve == "" {
				path = a.chartPath(fmt.Sprintf("%s_%s.html", a.instrument, kind.use))
			}
			return a.publish(cmd, page.Bytes(), path, out)
		},
	}
	out.register(cmd)
	return cmd
}
