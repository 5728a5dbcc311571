package candles

import (
	"fmt"
	"os"
)

// Stage writes the table to path as CSV. The file is closed before Stage
// returns, so a successful call leaves a complete file for readers. A failed
// call may leave a partial file behind.
func Stage(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: can't create staging file", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: can't close staging file", cerr)
		}
	}()

	if err := t.WriteCSV(f); err != nil {
		return fmt.Errorf("%w: can't write staging file", err)
	}
	return nil
}
