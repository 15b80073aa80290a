// Package loader builds datasets from external sources: delimited text files
// and SQL query results. Load failures are reported before the reconciliation
// engine is ever invoked.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dbsmedya/tablediff/internal/table"
)

// ErrLoadFailure is wrapped by all loader errors so callers can classify
// them with errors.Is.
var ErrLoadFailure = errors.New("load failure")

// ReadCSV parses delimited text into a dataset. The first record is the
// header. Ragged rows (field count differing from the header) fail the whole
// load. Column types are inferred across the column: a column is numeric iff
// every non-empty cell parses as a number, boolean likewise, otherwise text.
// Empty cells become missing values.
func ReadCSV(r io.Reader, delimiter rune) (*table.Dataset, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: input has no header row", ErrLoadFailure)
	}

	header := records[0]
	rows := records[1:]

	ds, err := table.NewDataset(header...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}

	kinds := make([]table.Kind, len(header))
	for col := range header {
		kinds[col] = inferColumnKind(rows, col)
	}
	for _, record := range rows {
		row := make([]table.Value, len(header))
		for col := range header {
			row[col] = convertCell(record[col], kinds[col])
		}
		if err := ds.AppendRow(row); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
		}
	}
	return ds, nil
}

// ReadCSVFile loads a dataset from a file on disk.
func ReadCSVFile(path string, delimiter rune) (*table.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	defer f.Close()
	return ReadCSV(f, delimiter)
}

// inferColumnKind picks the narrowest kind covering every non-empty cell of
// the column. A column of only empty cells stays text.
func inferColumnKind(rows [][]string, col int) table.Kind {
	sawValue := false
	allNumber, allBool := true, true
	for _, record := range rows {
		raw := record[col]
		if raw == "" {
			continue
		}
		sawValue = true
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			allNumber = false
		}
		if !isBoolLiteral(raw) {
			allBool = false
		}
		if !allNumber && !allBool {
			break
		}
	}
	switch {
	case !sawValue:
		return table.KindText
	case allNumber:
		return table.KindNumber
	case allBool:
		return table.KindBool
	default:
		return table.KindText
	}
}

func convertCell(raw string, kind table.Kind) table.Value {
	if raw == "" {
		return table.Missing()
	}
	switch kind {
	case table.KindNumber:
		f, _ := strconv.ParseFloat(raw, 64)
		return table.Number(f)
	case table.KindBool:
		return table.Bool(raw == "true" || raw == "True" || raw == "TRUE")
	default:
		return table.Text(raw)
	}
}

func isBoolLiteral(raw string) bool {
	switch raw {
	case "true", "True", "TRUE", "false", "False", "FALSE":
		return true
	}
	return false
}
