package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/isingvqe/energy"
	"github.com/katalvlaran/isingvqe/lattice"
	"github.com/katalvlaran/isingvqe/sweep"
)

// barWidth is the length of the longest histogram bar.
const barWidth = 40

// writeReport prints the top points of the landscape, the optimum, and the
// optimum's energy histogram as text bars.
func writeReport(w io.Writer, lat *lattice.Instance, res *sweep.Result, top int) error {
	lo, hi := energy.Bounds(lat)
	if _, err := fmt.Fprintf(w, "lattice %dx%d, energy range [%d, %d], %d/%d points\n\n",
		lat.Size(), lat.Size(), lo, hi, res.Len(), res.GridSize); err != nil {
		return err
	}

	fmt.Fprintf(w, "%-6s %8s %8s %8s %10s\n", "index", "x", "h", "j", "energy")
	for _, p := range res.Top(top) {
		fmt.Fprintf(w, "%-6d %8.4f %8.4f %8.4f %10.4f\n",
			p.Index, p.Params.X, p.Params.H, p.Params.J, p.Value)
	}

	b := res.Best
	fmt.Fprintf(w, "\noptimum #%d (x=%.4f, h=%.4f, j=%.4f): %.4f\n",
		b.Index, b.Params.X, b.Params.H, b.Params.J, b.Value)

	return writeHistogram(w, b.Histogram)
}

// writeHistogram renders one line per energy value, scaled to barWidth.
func writeHistogram(w io.Writer, h energy.Histogram) error {
	maxCount := 0
	for _, c := range h {
		if c > maxCount {
			maxCount = c
		}
	}
	for _, e := range h.Energies() {
		n := h[e] * barWidth / maxCount
		if _, err := fmt.Fprintf(w, "%5d | %-*s %d\n", e, barWidth, strings.Repeat("#", n), h[e]); err != nil {
			return err
		}
	}
	return nil
}
