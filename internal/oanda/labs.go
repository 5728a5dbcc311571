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
	_calendarURL = "/labs/v1/calendar"
)

// Calendar returns economic calendar events for an instrument. period is in
// seconds; a negative period looks ahead instead of back.
func (c *Client) Calendar(ctx context.Context, instrument string, period int) ([]model.CalendarEvent, error) {
	var resp []model.CalendarEvent
	err := c.send(ctx, http.MethodGet, _calendarURL, &resp, func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"instrument": instrument,
			"period":     strconv.Itoa(period),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: can't get calendar for %s", err, instrument)
	}
	return resp, nil
}
