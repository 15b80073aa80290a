// Package mapping provides the column correspondence between two datasets:
// the mapping itself, the name matcher that seeds it, and the edit session
// that callers use to revise it before a comparison.
package mapping

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/tablediff/internal/table"
)

// Mapping is an ordered correspondence from left-dataset column names to
// right-dataset column names. The mapped columns form the join key of a
// comparison. Iteration order is insertion order, which fixes the key-column
// order of the joined output.
type Mapping struct {
	pairs *orderedmap.OrderedMap[string, string]
}

// New creates an empty mapping.
func New() *Mapping {
	return &Mapping{pairs: orderedmap.NewOrderedMap[string, string]()}
}

// Set adds or replaces the pair left -> right.
func (m *Mapping) Set(left, right string) {
	m.pairs.Set(left, right)
}

// Remove deletes the pair keyed by left, reporting whether it existed.
func (m *Mapping) Remove(left string) bool {
	return m.pairs.Delete(left)
}

// Get returns the right column mapped from left.
func (m *Mapping) Get(left string) (string, bool) {
	return m.pairs.Get(left)
}

// Len returns the number of pairs.
func (m *Mapping) Len() int {
	return m.pairs.Len()
}

// Keys returns the left column names in insertion order.
func (m *Mapping) Keys() []string {
	return m.pairs.Keys()
}

// Each calls fn for every pair in insertion order.
func (m *Mapping) Each(fn func(left, right string)) {
	for el := m.pairs.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// Clone returns an independent copy preserving order.
func (m *Mapping) Clone() *Mapping {
	c := New()
	m.Each(func(left, right string) {
		c.pairs.Set(left, right)
	})
	return c
}

// Invert returns a mapping with left and right roles swapped. Inverting is
// only meaningful for well-formed mappings (distinct right columns).
func (m *Mapping) Invert() *Mapping {
	inv := New()
	m.Each(func(left, right string) {
		inv.pairs.Set(right, left)
	})
	return inv
}

// Validate checks that the mapping is usable against the given datasets:
// non-empty, every left name exists in left, every right name exists in
// right, and no two left columns map to the same right column.
func (m *Mapping) Validate(left, right *table.Dataset) error {
	if m.Len() == 0 {
		return fmt.Errorf("mapping is empty")
	}
	seen := make(map[string]string, m.Len())
	var err error
	m.Each(func(l, r string) {
		if err != nil {
			return
		}
		if !left.HasColumn(l) {
			err = fmt.Errorf("column %q not found in left dataset", l)
			return
		}
		if !right.HasColumn(r) {
			err = fmt.Errorf("column %q not found in right dataset", r)
			return
		}
		if prev, dup := seen[r]; dup {
			err = fmt.Errorf("columns %q and %q both map to right column %q", prev, l, r)
			return
		}
		seen[r] = l
	})
	return err
}
