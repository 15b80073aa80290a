package recon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dbsmedya/tablediff/internal/mapping"
	"github.com/dbsmedya/tablediff/internal/table"
)

// ErrInvalidMapping is wrapped by Compare when the mapping is empty or
// references a column absent from either dataset. The call produces no
// partial result.
var ErrInvalidMapping = errors.New("invalid column mapping")

// Compare performs a full outer join of left and right on the mapped key
// columns and classifies every joined row by provenance.
//
// Rows match when every mapped column pair compares equal value-by-value.
// A missing value in a key column matches nothing, so such rows always end
// up classified as only-in-left or only-in-right. Duplicate keys pair
// cross-product-wise, which is why the identity verdict also checks input
// row counts.
//
// Compare is stateless and side-effect-free: inputs are copied up front and
// never mutated, and repeated calls with the same inputs return identical
// results.
func Compare(left, right *table.Dataset, m *mapping.Mapping) (*Result, error) {
	if err := m.Validate(left, right); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapping, err)
	}

	left = left.Clone()
	right = right.Clone()

	keys := m.Keys()
	keySet := make(map[string]bool, len(keys))
	rightKeySet := make(map[string]bool, len(keys))
	rightKeyFor := make(map[string]string, len(keys)) // left key name -> right column
	m.Each(func(l, r string) {
		keySet[l] = true
		rightKeySet[r] = true
		rightKeyFor[l] = r
	})

	leftExtra := nonKeyColumns(left, keySet)
	rightExtra := nonKeyColumns(right, rightKeySet)
	schema := joinedSchema(keys, keySet, leftExtra, rightExtra)

	joined, err := table.NewDataset(schema.names...)
	if err != nil {
		return nil, fmt.Errorf("building joined schema: %w", err)
	}

	// Index right rows by encoded key. Rows with a missing key value join
	// nothing and are left out of the index.
	index := make(map[string][]int)
	for j := 0; j < right.RowCount(); j++ {
		if key, ok := encodeRightKey(right, rightKeyFor, keys, j); ok {
			index[key] = append(index[key], j)
		}
	}

	stats := Stats{LeftRows: left.RowCount(), RightRows: right.RowCount()}
	matched := make([]bool, right.RowCount())

	for i := 0; i < left.RowCount(); i++ {
		key, ok := encodeLeftKey(left, keys, i)
		bucket := index[key]
		if !ok || len(bucket) == 0 {
			_ = joined.AppendRow(schema.leftOnlyRow(left, keys, leftExtra, i))
			stats.OnlyLeft++
			continue
		}
		for _, j := range bucket {
			_ = joined.AppendRow(schema.matchedRow(left, right, keys, leftExtra, rightExtra, i, j))
			matched[j] = true
			stats.InBoth++
		}
	}
	for j := 0; j < right.RowCount(); j++ {
		if !matched[j] {
			_ = joined.AppendRow(schema.rightOnlyRow(right, rightKeyFor, keys, rightExtra, j))
			stats.OnlyRight++
		}
	}

	identical := stats.OnlyLeft == 0 && stats.OnlyRight == 0 &&
		stats.LeftRows == stats.RightRows

	differences := cloneSchema(joined)
	for i := 0; i < joined.RowCount(); i++ {
		if joined.At(ProvenanceColumn, i).String() != string(InBoth) {
			_ = differences.AppendRow(joined.Row(i))
		}
	}

	return &Result{
		Identical:   identical,
		Differences: differences,
		Stats:       stats,
	}, nil
}

// joinSchema carries the joined output layout: key columns in mapping order,
// then left non-key columns, then right non-key columns, then the provenance
// column. Non-key columns whose names collide across sides keep both copies
// under origin suffixes, and any name still clashing after suffixing (an
// input column named "provenance", or an input already carrying a suffix)
// grows further suffixes until the output names are pairwise distinct.
type joinSchema struct {
	names      []string
	leftExtra  []string // output names of left non-key columns
	rightExtra []string // output names of right non-key columns
}

func nonKeyColumns(d *table.Dataset, key map[string]bool) []string {
	var out []string
	for _, name := range d.Columns() {
		if !key[name] {
			out = append(out, name)
		}
	}
	return out
}

func joinedSchema(keys []string, keySet map[string]bool, leftExtra, rightExtra []string) *joinSchema {
	rightHas := make(map[string]bool, len(rightExtra))
	for _, name := range rightExtra {
		rightHas[name] = true
	}
	leftHas := make(map[string]bool, len(leftExtra))
	for _, name := range leftExtra {
		leftHas[name] = true
	}

	taken := map[string]bool{ProvenanceColumn: true}

	s := &joinSchema{}
	for _, k := range keys {
		out := k
		for taken[out] {
			out += "_key"
		}
		taken[out] = true
		s.names = append(s.names, out)
	}
	for _, name := range leftExtra {
		out := name
		if rightHas[name] {
			out += "_left"
		}
		for taken[out] {
			out += "_left"
		}
		taken[out] = true
		s.leftExtra = append(s.leftExtra, out)
		s.names = append(s.names, out)
	}
	for _, name := range rightExtra {
		out := name
		if leftHas[name] || keySet[name] {
			out += "_right"
		}
		for taken[out] {
			out += "_right"
		}
		taken[out] = true
		s.rightExtra = append(s.rightExtra, out)
		s.names = append(s.names, out)
	}
	s.names = append(s.names, ProvenanceColumn)
	return s
}

func (s *joinSchema) matchedRow(left, right *table.Dataset, keys, leftExtra, rightExtra []string, i, j int) []table.Value {
	row := make([]table.Value, 0, len(s.names))
	for _, k := range keys {
		row = append(row, left.At(k, i))
	}
	for _, name := range leftExtra {
		row = append(row, left.At(name, i))
	}
	for _, name := range rightExtra {
		row = append(row, right.At(name, j))
	}
	return append(row, table.Text(string(InBoth)))
}

func (s *joinSchema) leftOnlyRow(left *table.Dataset, keys, leftExtra []string, i int) []table.Value {
	row := make([]table.Value, 0, len(s.names))
	for _, k := range keys {
		row = append(row, left.At(k, i))
	}
	for _, name := range leftExtra {
		row = append(row, left.At(name, i))
	}
	for range s.rightExtra {
		row = append(row, table.Missing())
	}
	return append(row, table.Text(string(OnlyInLeft)))
}

func (s *joinSchema) rightOnlyRow(right *table.Dataset, rightKeyFor map[string]string, keys, rightExtra []string, j int) []table.Value {
	row := make([]table.Value, 0, len(s.names))
	for _, k := range keys {
		row = append(row, right.At(rightKeyFor[k], j))
	}
	for range s.leftExtra {
		row = append(row, table.Missing())
	}
	for _, name := range rightExtra {
		row = append(row, right.At(name, j))
	}
	return append(row, table.Text(string(OnlyInRight)))
}

// encodeLeftKey builds the composite key for left row i. ok is false when
// any key value is missing.
func encodeLeftKey(d *table.Dataset, keys []string, i int) (string, bool) {
	var b strings.Builder
	for _, k := range keys {
		v := d.At(k, i)
		if v.IsMissing() {
			return "", false
		}
		v.EncodeKey(&b)
	}
	return b.String(), true
}

// encodeRightKey builds the composite key for right row j using the mapped
// right columns, in left key order so encodings align across sides.
func encodeRightKey(d *table.Dataset, rightKeyFor map[string]string, keys []string, j int) (string, bool) {
	var b strings.Builder
	for _, k := range keys {
		v := d.At(rightKeyFor[k], j)
		if v.IsMissing() {
			return "", false
		}
		v.EncodeKey(&b)
	}
	return b.String(), true
}
