package loader

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/dbsmedya/tablediff/internal/table"
)

// OpenMySQL opens and pings a MySQL connection for a dataset source.
func OpenMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(2)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrLoadFailure, err)
	}
	return db, nil
}

// QuerySQL runs query against db and builds a dataset from the result set.
// Result columns become dataset columns in order; SQL NULL becomes a missing
// value. Drivers returning text for numeric columns are handled by re-parsing
// byte and string cells.
func QuerySQL(ctx context.Context, db *sql.DB, query string) (*table.Dataset, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", ErrLoadFailure, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	ds, err := table.NewDataset(cols...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}

	raw := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrLoadFailure, err)
		}
		row := make([]table.Value, len(cols))
		for i, cell := range raw {
			row[i] = convertSQLValue(cell)
		}
		if err := ds.AppendRow(row); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	return ds, nil
}

func convertSQLValue(cell any) table.Value {
	switch v := cell.(type) {
	case nil:
		return table.Missing()
	case int64:
		return table.Number(float64(v))
	case float64:
		return table.Number(v)
	case bool:
		return table.Bool(v)
	case time.Time:
		return table.Text(v.Format(time.RFC3339))
	case []byte:
		return table.ParseValue(string(v))
	case string:
		return table.ParseValue(v)
	default:
		return table.Text(fmt.Sprint(v))
	}
}
