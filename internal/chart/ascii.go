package chart

import (
	"github.com/guptarohit/asciigraph"
)

// ASCII plots closes for the terminal. An empty series plots nothing.
func ASCII(closes []float64, height int, caption string) string {
	if len(closes) == 0 {
		return ""
	}
	return asciigraph.Plot(closes, asciigraph.Height(height), asciigraph.Caption(caption))
}
