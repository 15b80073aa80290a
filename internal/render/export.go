package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/dbsmedya/tablediff/internal/table"
)

// Export serializes ds as delimited text. Missing values render as empty
// fields; provenance values are replaced with their display labels.
func Export(w io.Writer, ds *table.Dataset, delimiter rune, labels Labels) error {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}

	cols := ds.Columns()
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(cols))
	for r := 0; r < ds.RowCount(); r++ {
		for c, name := range cols {
			record[c] = labels.apply(name, ds.At(name, r))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes ds to a file on disk, creating or truncating it.
func ExportFile(path string, ds *table.Dataset, delimiter rune, labels Labels) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Export(f, ds, delimiter, labels); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
