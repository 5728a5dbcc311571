package oanda

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/STTM-NSU/forex-cli/internal/model"
	"resty.dev/v3"
)

const (
	_candlesURL      = "/v3/instruments/{instrument}/candles"
	_orderBookURL    = "/v3/instruments/{instrument}/orderBook"
	_positionBookURL = "/v3/instruments/{instrument}/positionBook"
)

func (c *Client) Candles(ctx context.Context, q model.CandlesQuery) (model.CandlesResponse, error) {
	if q.Count > _maxCandlesCount {
		q.Count = _maxCandlesCount
	}

	var resp model.CandlesResponse
	err := c.send(ctx, http.MethodGet, _candlesURL, &resp, func(r *resty.Request) {
		r.SetPathParam(_instrumentParam, q.Instrument).
			SetQueryParams(map[string]string{
				"granularity": q.Granularity,
				"count":       strconv.Itoa(q.Count),
				"price":       q.Price,
			})
	})
	if err != nil {
		return model.CandlesResponse{}, fmt.Errorf("%w: can't get candles for %s", err, q.Instrument)
	}
	return resp, nil
}

func (c *Client) OrderBook(ctx context.Context, instrument string) (model.Book, error) {
	var resp model.OrderBookResponse
	err := c.send(ctx, http.MethodGet, _orderBookURL, &resp, func(r *resty.Request) {
		r.SetPathParam(_instrumentParam, instrument).
			SetQueryParam("bucketWidth", "1")
	})
	if err != nil {
		return model.Book{}, fmt.Errorf("%w: can't get order book for %s", err, instrument)
	}
	return resp.OrderBook, nil
}

func (c *Client) PositionBook(ctx context.Context, instrument string) (model.Book, error) {
	var resp model.PositionBookResponse
	err := c.send(ctx, http.MethodGet, _positionBookURL, &resp, func(r *resty.Request) {
		r.SetPathParam(_instrumentParam, instrument)
	})
	if err != nil {
		return model.Book{}, fmt.Errorf("%w: can't get position book for %s", err, instrument)
	}
	return resp.PositionBook, nil
}
