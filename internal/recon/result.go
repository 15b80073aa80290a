// Package recon implements the dataset reconciliation engine: a full outer
// join of two datasets on a mapped key, with provenance classification and
// an identity verdict.
package recon

import "github.com/dbsmedya/tablediff/internal/table"

// Provenance classifies a joined row by origin. Labels are neutral; display
// names for the two datasets are substituted by renderers, never stored in
// results.
type Provenance string

const (
	// OnlyInLeft marks a row found only in the left dataset.
	OnlyInLeft Provenance = "only-in-left"
	// OnlyInRight marks a row found only in the right dataset.
	OnlyInRight Provenance = "only-in-right"
	// InBoth marks a row matched across both datasets.
	InBoth Provenance = "in-both"
)

// ProvenanceColumn is the name of the classification column appended to the
// joined output.
const ProvenanceColumn = "provenance"

// Stats summarizes one comparison.
type Stats struct {
	LeftRows  int // input row count, left
	RightRows int // input row count, right
	InBoth    int // joined rows matched across both sides
	OnlyLeft  int // joined rows present only in left
	OnlyRight int // joined rows present only in right
}

// Result is the outcome of one Compare call. It is produced fresh per
// invocation and never mutated afterwards.
type Result struct {
	// Identical is true iff every joined row matched across both sides and
	// the two inputs have the same row count. The row-count clause catches
	// asymmetric duplicate keys that the join alone would not flag.
	Identical bool

	// Differences holds exactly the joined rows not classified InBoth, with
	// the provenance column appended. Empty when Identical.
	Differences *table.Dataset

	Stats Stats
}

// Filter returns the subset of Differences whose provenance equals p, in the
// original row order. Given identical inputs the subset is deterministic.
func (r *Result) Filter(p Provenance) *table.Dataset {
	out := cloneSchema(r.Differences)
	want := string(p)
	for i := 0; i < r.Differences.RowCount(); i++ {
		if r.Differences.At(ProvenanceColumn, i).String() == want {
			_ = out.AppendRow(r.Differences.Row(i))
		}
	}
	return out
}

// cloneSchema returns an empty dataset with the same columns as d.
func cloneSchema(d *table.Dataset) *table.Dataset {
	out, _ := table.NewDataset(d.Columns()...)
	return out
}
