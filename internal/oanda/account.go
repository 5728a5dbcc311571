package oanda

import (
	"context"
	"fmt"
	"net/http"

	"github.com/STTM-NSU/forex-cli/internal/model"
	"resty.dev/v3"
)

const (
	_accountSummaryURL = "/v3/accounts/{accountID}/summary"
	_pricingURL        = "/v3/accounts/{accountID}/pricing"
)

func (c *Client) AccountSummary(ctx context.Context) (model.AccountSummary, error) {
	var resp model.AccountSummaryResponse
	if err := c.send(ctx, http.MethodGet, _accountSummaryURL, &resp, nil); err != nil {
		return model.AccountSummary{}, fmt.Errorf("%w: can't get account summary", err)
	}
	return resp.Account, nil
}

func (c *Client) Pricing(ctx context.Context, instrument string) (model.Price, error) {
	var resp model.PricingResponse
	err := c.send(ctx, http.MethodGet, _pricingURL, &resp, func(r *resty.Request) {
		r.SetQueryParam("instruments", instrument)
	})
	if err != nil {
		return model.Price{}, fmt.Errorf("%w: can't get pricing", err)
	}
	if len(resp.Prices) == 0 {
		return model.Price{}, fmt.Errorf("empty pricing for instrument %s", instrument)
	}
	return resp.Prices[0], nil
}
