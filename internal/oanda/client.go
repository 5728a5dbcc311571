package oanda

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/STTM-NSU/forex-cli/internal/config"
	"github.com/STTM-NSU/forex-cli/internal/logger"
	"github.com/STTM-NSU/forex-cli/internal/model"
	"github.com/bytedance/sonic"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	_maxCandlesCount = config.MaxCandlesCount

	_accountIDParam  = "accountID"
	_instrumentParam = "instrument"
)

type Client struct {
	c         *resty.Client
	accountID string
	// credErr fails every request when the token or account is missing
	credErr error

	rateLimiter ratelimit.Limiter

	logger logger.Logger
}

func NewClient(cfg config.Oanda, logger logger.Logger) *Client {
	client := resty.New().
		SetLogger(logger).
		SetBaseURL(cfg.BaseURL()).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token).
		SetHeader("Accept-Datetime-Format", "RFC3339")
	client.AddContentTypeEncoder("json", encodeJSON)
	client.AddContentTypeDecoder("json", decodeJSON)

	return &Client{
		c:           client,
		accountID:   cfg.AccountID,
		credErr:     cfg.CheckCredentials(),
		rateLimiter: ratelimit.New(cfg.RequestsPerSecond, ratelimit.Per(time.Second)),
		logger:      logger,
	}
}

func encodeJSON(w io.Writer, v any) error {
	return sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

func decodeJSON(r io.Reader, v any) error {
	return sonic.ConfigDefault.NewDecoder(r).Decode(v)
}

// send executes one request. build may set query, path params and body;
// result receives the decoded 2xx body.
func (c *Client) send(ctx context.Context, method, url string, result any, build func(r *resty.Request)) error {
	if c.credErr != nil {
		return c.credErr
	}

	req := c.c.R().
		SetContext(ctx).
		SetPathParam(_accountIDParam, c.accountID).
		SetResult(result).
		SetError(&model.APIErrorResponse{})
	if build != nil {
		build(req)
	}

	c.rateLimiter.Take()
	resp, err := req.Execute(method, url)
	if err != nil {
		return fmt.Errorf("%w: can't send request to %s", err, url)
	}

	c.logger.Debugf("got response %s %s status: %s, %s", method, resp.Request.URL, resp.Status(), resp.Duration())

	if !resp.IsSuccess() {
		return newAPIError(resp)
	}
	return nil
}
