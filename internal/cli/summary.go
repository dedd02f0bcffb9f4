package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/jurimetrics/fjcnorm/internal/application/normalize"
)

// printSummary renders the per-circuit row counts of a completed pass as a
// table, with the numbered circuits first in numeric order and the lettered
// codes after.
func printSummary(w io.Writer, res normalize.Result, noColor bool) {
	if noColor {
		color.NoColor = true
	}

	fmt.Fprintln(w, color.New(color.Bold).Sprint("Normalization summary"))

	circuits := make([]string, 0, len(res.ByCircuit))
	for c := range res.ByCircuit {
		circuits = append(circuits, c)
	}
	sort.Slice(circuits, func(i, j int) bool { return circuitLess(circuits[i], circuits[j]) })

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Circuit", "Rows"})
	for _, c := range circuits {
		table.Append([]string{c, strconv.Itoa(res.ByCircuit[c])})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(res.RowsEmitted)})
	table.Render()

	fmt.Fprintf(w, "%d rows read, %d emitted, %d dropped\n",
		res.RowsRead, res.RowsEmitted, res.RowsDropped)
}

// circuitLess orders circuit codes: "1".."11" numerically, then DC, FC, CIT
// alphabetically.
func circuitLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
