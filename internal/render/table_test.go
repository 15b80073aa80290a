package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/tablediff/internal/mapping"
	"github.com/dbsmedya/tablediff/internal/recon"
	"github.com/dbsmedya/tablediff/internal/table"
)

func compareFixture(t *testing.T) *recon.Result {
	t.Helper()
	left, err := table.NewDataset("id", "v")
	require.NoError(t, err)
	require.NoError(t, left.AppendRow([]table.Value{table.Number(1), table.Text("a")}))
	require.NoError(t, left.AppendRow([]table.Value{table.Number(2), table.Text("b")}))

	right, err := table.NewDataset("id", "v")
	require.NoError(t, err)
	require.NoError(t, right.AppendRow([]table.Value{table.Number(1), table.Text("a")}))
	require.NoError(t, right.AppendRow([]table.Value{table.Number(3), table.Text("c")}))

	m := mapping.New()
	m.Set("id", "id")
	m.Set("v", "v")

	result, err := recon.Compare(left, right, m)
	require.NoError(t, err)
	return result
}

func TestNewLabels(t *testing.T) {
	labels := NewLabels("old", "new")

	assert.Equal(t, "Only in old", labels[string(recon.OnlyInLeft)])
	assert.Equal(t, "Only in new", labels[string(recon.OnlyInRight)])
	assert.Equal(t, "In both old and new", labels[string(recon.InBoth)])
}

func TestVerdictIdentical(t *testing.T) {
	var buf bytes.Buffer
	Verdict(&buf, &recon.Result{Identical: true, Differences: emptyDs(t)})
	assert.Contains(t, buf.String(), "identical")
}

func TestVerdictDifferent(t *testing.T) {
	result := compareFixture(t)
	var buf bytes.Buffer
	Verdict(&buf, result)
	assert.Contains(t, buf.String(), "differ")
	assert.Contains(t, buf.String(), "2")
}

func TestSummary(t *testing.T) {
	result := compareFixture(t)
	var buf bytes.Buffer
	Summary(&buf, result, "old", "new")

	out := buf.String()
	assert.Contains(t, out, "Rows in old:    2")
	assert.Contains(t, out, "Rows in new:    2")
	assert.Contains(t, out, "Matched:       1")
}

func TestTableRendersLabeledProvenance(t *testing.T) {
	result := compareFixture(t)
	var buf bytes.Buffer

	written := Table(&buf, result.Differences, 0, NewLabels("old", "new"))

	out := buf.String()
	assert.Equal(t, 2, written)
	assert.Contains(t, out, "Only in old")
	assert.Contains(t, out, "Only in new")
	assert.NotContains(t, out, "only-in-left", "neutral labels must be substituted")
	// Header row present
	assert.Contains(t, out, "id")
	assert.Contains(t, out, recon.ProvenanceColumn)
}

func TestTableLimitTruncates(t *testing.T) {
	result := compareFixture(t)
	var buf bytes.Buffer

	written := Table(&buf, result.Differences, 1, NewLabels("old", "new"))

	assert.Equal(t, 1, written)
	assert.Contains(t, buf.String(), "1 more row(s) not shown")
}

func TestTableTruncatesWideCells(t *testing.T) {
	ds, err := table.NewDataset("text")
	require.NoError(t, err)
	wide := strings.Repeat("x", 200)
	require.NoError(t, ds.AppendRow([]table.Value{table.Text(wide)}))

	var buf bytes.Buffer
	Table(&buf, ds, 0, Labels{})

	assert.NotContains(t, buf.String(), wide)
	assert.Contains(t, buf.String(), "…")
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input    string
		expected recon.Provenance
		ok       bool
	}{
		{"left-only", recon.OnlyInLeft, true},
		{"right-only", recon.OnlyInRight, true},
		{"both", recon.InBoth, true},
		{"all", "", false},
		{"", "", false},
		{"junk", "", false},
	}

	for _, tt := range tests {
		p, ok := ParseFilter(tt.input)
		assert.Equal(t, tt.ok, ok, "filter %q", tt.input)
		assert.Equal(t, tt.expected, p, "filter %q", tt.input)
	}
}

func emptyDs(t *testing.T) *table.Dataset {
	t.Helper()
	ds, err := table.NewDataset("id")
	require.NoError(t, err)
	return ds
}
