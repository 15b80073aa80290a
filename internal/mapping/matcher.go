package mapping

import "sort"

// Partition is the three-way split of two column-name sets. The three slices
// are pairwise disjoint and together cover the union of both inputs.
type Partition struct {
	Matching  []string // names present in both datasets
	LeftOnly  []string // names present only in the left dataset
	RightOnly []string // names present only in the right dataset
}

// Match partitions two column-name sets into matching, left-only and
// right-only names. Output slices are sorted for deterministic reporting.
// Used to seed a default mapping and to flag columns needing review; it never
// performs the comparison itself.
func Match(leftCols, rightCols []string) Partition {
	left := make(map[string]bool, len(leftCols))
	for _, c := range leftCols {
		left[c] = true
	}
	right := make(map[string]bool, len(rightCols))
	for _, c := range rightCols {
		right[c] = true
	}

	var p Partition
	for c := range left {
		if right[c] {
			p.Matching = append(p.Matching, c)
		} else {
			p.LeftOnly = append(p.LeftOnly, c)
		}
	}
	for c := range right {
		if !left[c] {
			p.RightOnly = append(p.RightOnly, c)
		}
	}

	sort.Strings(p.Matching)
	sort.Strings(p.LeftOnly)
	sort.Strings(p.RightOnly)
	return p
}

// SeedMapping builds the default identity mapping from a partition's
// matching names.
func SeedMapping(p Partition) *Mapping {
	m := New()
	for _, c := range p.Matching {
		m.Set(c, c)
	}
	return m
}
