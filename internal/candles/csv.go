package candles

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the header and every row. Output depends only on the table.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("%w: can't write header", err)
	}
	for i, r := range t.Rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("%w: can't write row %d", err, i)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Record returns the row as strings in Header order.
func (r Row) Record() []string {
	return []string{r.Time, r.Open, r.High, r.Low, r.Close, strconv.FormatInt(r.Volume, 10)}
}
