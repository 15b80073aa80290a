// Package render turns comparison results into terminal reports and
// delimited-text exports. All provenance labeling with caller-facing dataset
// names happens here, never inside the engine.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/tablediff/internal/recon"
	"github.com/dbsmedya/tablediff/internal/table"
)

// maxCellWidth caps a rendered cell before truncation kicks in.
const maxCellWidth = 40

// Labels maps neutral provenance constants to display strings built from the
// two datasets' names.
type Labels map[string]string

// NewLabels builds display labels for the given dataset names.
func NewLabels(leftName, rightName string) Labels {
	return Labels{
		string(recon.OnlyInLeft):  fmt.Sprintf("Only in %s", leftName),
		string(recon.OnlyInRight): fmt.Sprintf("Only in %s", rightName),
		string(recon.InBoth):      fmt.Sprintf("In both %s and %s", leftName, rightName),
	}
}

func (l Labels) apply(colName string, v table.Value) string {
	s := v.String()
	if colName != recon.ProvenanceColumn {
		return s
	}
	if label, ok := l[s]; ok {
		return label
	}
	return s
}

// Verdict writes the colored one-line comparison verdict.
func Verdict(w io.Writer, res *recon.Result) {
	if res.Identical {
		fmt.Fprintln(w, color.Green.Sprint("Datasets are identical."))
		return
	}
	fmt.Fprintln(w, color.Red.Sprintf("Datasets differ: %d mismatched row(s).",
		res.Differences.RowCount()))
}

// Summary writes the comparison statistics block.
func Summary(w io.Writer, res *recon.Result, leftName, rightName string) {
	fmt.Fprintf(w, "Rows in %s:    %d\n", leftName, res.Stats.LeftRows)
	fmt.Fprintf(w, "Rows in %s:    %d\n", rightName, res.Stats.RightRows)
	fmt.Fprintf(w, "Matched:       %d\n", res.Stats.InBoth)
	fmt.Fprintf(w, "Only in %s: %d\n", leftName, res.Stats.OnlyLeft)
	fmt.Fprintf(w, "Only in %s: %d\n", rightName, res.Stats.OnlyRight)
}

// Table writes ds as a fixed-width text table, at most limit rows
// (limit <= 0 means all). Cell widths are rune-aware; overlong cells are
// truncated with an ellipsis. Returns the number of rows written.
func Table(w io.Writer, ds *table.Dataset, limit int, labels Labels) int {
	cols := ds.Columns()
	rows := ds.RowCount()
	if limit > 0 && rows > limit {
		rows = limit
	}

	widths := make([]int, len(cols))
	cells := make([][]string, rows)
	for i, name := range cols {
		widths[i] = runewidth.StringWidth(name)
	}
	for r := 0; r < rows; r++ {
		cells[r] = make([]string, len(cols))
		for c, name := range cols {
			s := labels.apply(name, ds.At(name, r))
			s = runewidth.Truncate(s, maxCellWidth, "…")
			cells[r][c] = s
			if sw := runewidth.StringWidth(s); sw > widths[c] {
				widths[c] = sw
			}
		}
	}

	for c, name := range cols {
		fmt.Fprintf(w, "%s  ", runewidth.FillRight(name, widths[c]))
	}
	fmt.Fprintln(w)
	for c := range cols {
		fmt.Fprintf(w, "%s  ", strings.Repeat("-", widths[c]))
	}
	fmt.Fprintln(w)
	for r := 0; r < rows; r++ {
		for c := range cols {
			fmt.Fprintf(w, "%s  ", runewidth.FillRight(cells[r][c], widths[c]))
		}
		fmt.Fprintln(w)
	}
	if rows < ds.RowCount() {
		fmt.Fprintf(w, "... %d more row(s) not shown\n", ds.RowCount()-rows)
	}
	return rows
}

// ParseFilter maps a display filter name to a provenance constant. ok is
// false for "all" (no filtering) and unknown names.
func ParseFilter(filter string) (recon.Provenance, bool) {
	switch filter {
	case "left-only":
		return recon.OnlyInLeft, true
	case "right-only":
		return recon.OnlyInRight, true
	case "both":
		return recon.InBoth, true
	}
	return "", false
}
