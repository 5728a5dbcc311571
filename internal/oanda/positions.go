package oanda

import (
	"context"
	"fmt"
	"net/http"

	"github.com/STTM-NSU/forex-cli/internal/model"
	"resty.dev/v3"
)

const (
	_openPositionsURL = "/v3/accounts/{accountID}/openPositions"
	_openTradesURL    = "/v3/accounts/{accountID}/openTrades"
	_closeTradeURL    = "/v3/accounts/{accountID}/trades/{tradeSpecifier}/close"

	_closeAllUnits = "ALL"
)

func (c *Client) OpenPositions(ctx context.Context) ([]model.Position, error) {
	var resp model.PositionsResponse
	if err := c.send(ctx, http.MethodGet, _openPositionsURL, &resp, nil); err != nil {
		return nil, fmt.Errorf("%w: can't list open positions", err)
	}
	return resp.Positions, nil
}

func (c *Client) OpenTrades(ctx context.Context) ([]model.Trade, error) {
	var resp model.TradesResponse
	if err := c.send(ctx, http.MethodGet, _openTradesURL, &resp, nil); err != nil {
		return nil, fmt.Errorf("%w: can't list open trades", err)
	}
	return resp.Trades, nil
}

// CloseTrade closes units of a trade, or the whole trade when units is empty.
func (c *Client) CloseTrade(ctx context.Context, tradeID, units string) (model.CloseTradeResponse, error) {
	if units == "" {
		units = _closeAllUnits
	}

	var resp model.CloseTradeResponse
	err := c.send(ctx, http.MethodPut, _closeTradeURL, &resp, func(r *resty.Request) {
		r.SetPathParam("tradeSpecifier", tradeID).
			SetBody(model.CloseTradeRequest{Units: units})
	})
	if err != nil {
		return model.CloseTradeResponse{}, fmt.Errorf("%w: can't close trade %s", err, tradeID)
	}
	return resp, nil
}
