package cli

//go:generate mockgen -source=broker.go -destination=broker_mock_test.go -package=cli

import (
	"context"

	"github.com/STTM-NSU/forex-cli/internal/candles"
	"github.com/STTM-NSU/forex-cli/internal/model"
)

// Broker is the part of the OANDA client the commands use.
type Broker interface {
	Pricing(ctx context.Context, instrument string) (model.Price, error)
	AccountSummary(ctx context.Context) (model.AccountSummary, error)

	Orders(ctx context.Context, state string, count int) ([]model.Order, error)
	PendingOrders(ctx context.Context) ([]model.Order, error)
	CreateLimitOrder(ctx context.Context, order model.LimitOrder) (model.CreateOrderResponse, error)
	CancelOrder(ctx context.Context, orderID string) (model.Transaction, error)

	OpenPositions(ctx context.Context) ([]model.Position, error)
	OpenTrades(ctx context.Context) ([]model.Trade, error)
	CloseTrade(ctx context.Context, tradeID, units string) (model.CloseTradeResponse, error)

	Candles(ctx context.Context, q model.CandlesQuery) (model.CandlesResponse, error)
	OrderBook(ctx context.Context, instrument string) (model.Book, error)
	PositionBook(ctx context.Context, instrument string) (model.Book, error)
	Calendar(ctx context.Context, instrument string, period int) ([]model.CalendarEvent, error)
}

// Archiver stores normalized candles and reads them back.
type Archiver interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, instrument, granularity string, t candles.Table) (int, error)
	Load(ctx context.Context, instrument, granularity string) ([]model.ArchivedCandle, error)
}
