package candles

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	dataframe "github.com/rocketlaunchr/dataframe-go"
)

var ErrBadHeader = errors.New("unexpected staging file header")

// LoadFrame opens a staged table and reads it into a typed frame with a
// Datetime time column, float64 price columns and an int64 Volume column.
func LoadFrame(path string) (*dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: can't open staging file", err)
	}
	defer f.Close()

	return ReadFrame(f)
}

func ReadFrame(r io.Reader) (*dataframe.DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: can't read csv", err)
	}
	if len(records) == 0 || !equalHeader(records[0]) {
		return nil, ErrBadHeader
	}
	records = records[1:]

	initOptions := &dataframe.SeriesInit{Capacity: len(records)}
	var (
		dates  = dataframe.NewSeriesTime(Header[0], initOptions)
		open   = dataframe.NewSeriesFloat64(Header[1], initOptions)
		high   = dataframe.NewSeriesFloat64(Header[2], initOptions)
		low    = dataframe.NewSeriesFloat64(Header[3], initOptions)
		closes = dataframe.NewSeriesFloat64(Header[4], initOptions)
		volume = dataframe.NewSeriesInt64(Header[5], initOptions)
	)

	for i, rec := range records {
		ts, err := time.Parse(TimeLayout, rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d", err, i)
		}
		dates.Append(ts)

		for j, s := range []*dataframe.SeriesFloat64{open, high, low, closes} {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %s", err, i, Header[j+1])
			}
			s.Append(v)
		}

		v, err := strconv.ParseInt(rec[5], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %s", err, i, Header[5])
		}
		volume.Append(v)
	}

	// the frame fixes its row count at construction, so build it last
	return dataframe.NewDataFrame(dates, open, high, low, closes, volume), nil
}

func equalHeader(rec []string) bool {
	if len(rec) != len(Header) {
		return false
	}
	for i := range rec {
		if rec[i] != Header[i] {
			return false
		}
	}
	return true
}

// Floats returns a float64 column of a frame loaded by ReadFrame.
func Floats(frame *dataframe.DataFrame, name string) ([]float64, error) {
	idx, err := frame.NameToColumn(name)
	if err != nil {
		return nil, err
	}
	s, ok := frame.Series[idx].(*dataframe.SeriesFloat64)
	if !ok {
		return nil, fmt.Errorf("column %s is %s, not float64", name, frame.Series[idx].Type())
	}
	return s.Values, nil
}

// Volumes returns the Volume column as float64.
func Volumes(frame *dataframe.DataFrame) ([]float64, error) {
	idx, err := frame.NameToColumn(Header[5])
	if err != nil {
		return nil, err
	}
	s, ok := frame.Series[idx].(*dataframe.SeriesInt64)
	if !ok {
		return nil, fmt.Errorf("column %s is %s, not int64", Header[5], frame.Series[idx].Type())
	}
	out := make([]float64, s.NRows())
	for i := range out {
		if v, ok := s.Value(i).(int64); ok {
			out[i] = float64(v)
		}
	}
	return out, nil
}

func Times(frame *dataframe.DataFrame) ([]time.Time, error) {
	idx, err := frame.NameToColumn(Header[0])
	if err != nil {
		return nil, err
	}
	s, ok := frame.Series[idx].(*dataframe.SeriesTime)
	if !ok {
		return nil, fmt.Errorf("column %s is %s, not time", Header[0], frame.Series[idx].Type())
	}
	out := make([]time.Time, len(s.Values))
	for i, v := range s.Values {
		if v != nil {
			out[i] = *v
		}
	}
	return out, nil
}
