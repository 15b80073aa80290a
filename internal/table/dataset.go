package table

import "fmt"

// Dataset is an ordered collection of named, equal-length columns. Rows are
// positional tuples across columns. Datasets handed to the reconciliation
// engine are treated as read-only; the engine works on its own copies.
type Dataset struct {
	names   []string
	columns map[string][]Value
}

// NewDataset creates an empty dataset with the given column names, in order.
// Duplicate names are rejected.
func NewDataset(names ...string) (*Dataset, error) {
	d := &Dataset{
		names:   make([]string, 0, len(names)),
		columns: make(map[string][]Value, len(names)),
	}
	for _, name := range names {
		if err := d.AddColumn(name, nil); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// AddColumn appends a column to the dataset. The column's length must match
// the existing row count unless the dataset has no columns yet.
func (d *Dataset) AddColumn(name string, values []Value) error {
	if _, exists := d.columns[name]; exists {
		return fmt.Errorf("duplicate column %q", name)
	}
	if len(d.names) > 0 && len(values) != d.RowCount() {
		return fmt.Errorf("column %q has %d values, dataset has %d rows",
			name, len(values), d.RowCount())
	}
	d.names = append(d.names, name)
	d.columns[name] = values
	return nil
}

// AppendRow appends one value per column. The row length must match the
// column count.
func (d *Dataset) AppendRow(row []Value) error {
	if len(row) != len(d.names) {
		return fmt.Errorf("row has %d values, dataset has %d columns", len(row), len(d.names))
	}
	for i, name := range d.names {
		d.columns[name] = append(d.columns[name], row[i])
	}
	return nil
}

// Columns returns the column names in order. The caller must not modify the
// returned slice.
func (d *Dataset) Columns() []string {
	return d.names
}

// HasColumn reports whether the dataset contains a column with the given name.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// Column returns the values of the named column, or nil if absent.
func (d *Dataset) Column(name string) []Value {
	return d.columns[name]
}

// RowCount returns the number of rows.
func (d *Dataset) RowCount() int {
	if len(d.names) == 0 {
		return 0
	}
	return len(d.columns[d.names[0]])
}

// Row returns row i as a value tuple in column order.
func (d *Dataset) Row(i int) []Value {
	row := make([]Value, len(d.names))
	for j, name := range d.names {
		row[j] = d.columns[name][i]
	}
	return row
}

// At returns the value at row i of the named column. Missing if the column
// does not exist.
func (d *Dataset) At(name string, i int) Value {
	col, ok := d.columns[name]
	if !ok {
		return Missing()
	}
	return col[i]
}

// Clone returns a deep copy. Column value slices are copied so mutation of
// the clone never reaches the original.
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{
		names:   append([]string(nil), d.names...),
		columns: make(map[string][]Value, len(d.names)),
	}
	for name, values := range d.columns {
		c.columns[name] = append([]Value(nil), values...)
	}
	return c
}

// Rename changes a column's name in place, keeping its position. It fails if
// the old name is absent or the new name already exists.
func (d *Dataset) Rename(old, new string) error {
	if old == new {
		return nil
	}
	values, ok := d.columns[old]
	if !ok {
		return fmt.Errorf("column %q not found", old)
	}
	if _, exists := d.columns[new]; exists {
		return fmt.Errorf("column %q already exists", new)
	}
	for i, name := range d.names {
		if name == old {
			d.names[i] = new
			break
		}
	}
	delete(d.columns, old)
	d.columns[new] = values
	return nil
}
