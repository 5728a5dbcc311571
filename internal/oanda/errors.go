package oanda

import (
	"fmt"

	"github.com/STTM-NSU/forex-cli/internal/model"
	"resty.dev/v3"
)

// APIError is any non-2xx answer from the broker: auth failures, unknown
// instruments, rate limits and so on. It is never retried.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "no error message"
	}
	if e.Code != "" {
		return fmt.Sprintf("broker error %d %s: %s", e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("broker error %d: %s", e.StatusCode, msg)
}

func newAPIError(resp *resty.Response) *APIError {
	e := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*model.APIErrorResponse); ok && body != nil {
		e.Code = body.ErrorCode
		e.Message = body.ErrorMessage
	}
	if e.Message == "" {
		e.Message = resp.Status()
	}
	return e
}
