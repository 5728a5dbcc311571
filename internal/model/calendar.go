package model

// CalendarEvent is an economic calendar entry. Every field is optional on
// the wire, so presence is tracked with pointers.
type CalendarEvent struct {
	Title     *string `json:"title,omitempty"`
	Timestamp *int64  `json:"timestamp,omitempty"`
	Impact    *int    `json:"impact,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	Forecast  *string `json:"forecast,omitempty"`
	Market    *string `json:"market,omitempty"`
	Currency  *string `json:"currency,omitempty"`
	Region    *string `json:"region,omitempty"`
	Actual    *string `json:"actual,omitempty"`
	Previous  *string `json:"previous,omitempty"`
}
