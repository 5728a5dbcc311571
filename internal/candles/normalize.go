package candles

import (
	"fmt"
	"time"

	"github.com/STTM-NSU/forex-cli/internal/model"
)

const (
	// BrokerTimeLayout is the only timestamp format the broker emits for
	// candles: RFC3339 in UTC with an optional fraction of up to nine digits.
	BrokerTimeLayout = "2006-01-02T15:04:05.999999999Z"
	// TimeLayout is the normalized timestamp: date and whole seconds.
	TimeLayout = "2006-01-02 15:04:05"
)

// Header names the columns of a normalized table, in order.
var Header = []string{"Datetime", "Open", "High", "Low", "Close", "Volume"}

type PriceComponent string

const (
	Mid PriceComponent = "M"
	Bid PriceComponent = "B"
	Ask PriceComponent = "A"
)

func ParsePriceComponent(s string) (PriceComponent, error) {
	switch p := PriceComponent(s); p {
	case Mid, Bid, Ask:
		return p, nil
	default:
		return "", fmt.Errorf("unknown price component %q, expected M, B or A", s)
	}
}

// Field is the name of the nested price object in a candle record.
func (p PriceComponent) Field() string {
	switch p {
	case Bid:
		return "bid"
	case Ask:
		return "ask"
	default:
		return "mid"
	}
}

func (p PriceComponent) data(c model.Candle) *model.CandleData {
	switch p {
	case Bid:
		return c.Bid
	case Ask:
		return c.Ask
	default:
		return c.Mid
	}
}

type Row struct {
	Time   string
	Open   string
	High   string
	Low    string
	Close  string
	Volume int64
}

// Table is a normalized candle response. Rows keep the broker's order.
type Table struct {
	Rows []Row
}

func (t Table) Len() int {
	return len(t.Rows)
}

type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("candle %d: missing field %q", e.Index, e.Field)
}

type TimestampFormatError struct {
	Index int
	Value string
	Err   error
}

func (e *TimestampFormatError) Error() string {
	return fmt.Sprintf("candle %d: timestamp %q is not in broker format %s", e.Index, e.Value, BrokerTimeLayout)
}

func (e *TimestampFormatError) Unwrap() error {
	return e.Err
}

func ParseTime(s string) (time.Time, error) {
	return time.Parse(BrokerTimeLayout, s)
}

// FormatTime converts a broker timestamp to TimeLayout, dropping sub-second
// precision and the zone suffix.
func FormatTime(s string) (string, error) {
	t, err := ParseTime(s)
	if err != nil {
		return "", err
	}
	return t.Format(TimeLayout), nil
}

// Normalize flattens candle records into a Table using the given price
// component. Prices are copied as received; any record missing a required
// field fails the whole call.
func Normalize(records []model.Candle, component PriceComponent) (Table, error) {
	rows := make([]Row, 0, len(records))
	for i, c := range records {
		if c.Time == "" {
			return Table{}, &MissingFieldError{Index: i, Field: "time"}
		}
		ts, err := FormatTime(c.Time)
		if err != nil {
			return Table{}, &TimestampFormatError{Index: i, Value: c.Time, Err: err}
		}

		data := component.data(c)
		if data == nil {
			return Table{}, &MissingFieldError{Index: i, Field: component.Field()}
		}
		for _, f := range []struct{ name, value string }{
			{"o", data.O}, {"h", data.H}, {"l", data.L}, {"c", data.C},
		} {
			if f.value == "" {
				return Table{}, &MissingFieldError{Index: i, Field: component.Field() + "." + f.name}
			}
		}
		if c.Volume == nil {
			return Table{}, &MissingFieldError{Index: i, Field: "volume"}
		}

		rows = append(rows, Row{
			Time:   ts,
			Open:   data.O,
			High:   data.H,
			Low:    data.L,
			Close:  data.C,
			Volume: *c.Volume,
		})
	}

	return Table{Rows: rows}, nil
}
