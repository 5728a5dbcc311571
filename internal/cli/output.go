package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var separator = strings.Repeat("-", 30)

func printTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

// chartFlags are the output options shared by chart commands.
type chartFlags struct {
	out   string
	serve string
	open  bool
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.out, "out", "", "write the chart page to this file")
	cmd.Flags().StringVar(&f.serve, "serve", "", "serve the chart page on this address, e.g. localhost:8080")
	cmd.Flags().BoolVar(&f.open, "open", false, "open the written chart in the browser")
}

// publish writes the page to path when it is set and serves it when an
// address is set. Serving blocks until the command context is cancelled.
func (a *app) publish(cmd *cobra.Command, page []byte, path string, f chartFlags) error {
	w := cmd.OutOrStdout()

	if path != "" {
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return fmt.Errorf("%w: can't write chart", err)
		}
		fmt.Fprintf(w, "Chart saved to %s\n", path)

		if f.open {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
			if err := a.openBrowser("file://" + path); err != nil {
				a.logger.Warnf("%s: can't open browser", err)
			}
		}
	}

	if f.serve != "" {
		fmt.Fprintf(w, "Serving chart at http://%s, press Ctrl+C to stop\n", f.serve)
		if err := a.serve(cmd.Context(), f.serve, page); err != nil {
			return fmt.Errorf("%w: can't serve chart", err)
		}
	}
	return nil
}

func (a *app) chartPath(name string) string {
	return filepath.Join(a.cfg.Chart.OutputDir, name)
}
