package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// OpenSQLite opens a SQLite database read-only.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// LoadQuery runs a query against a SQLite database and returns the result
// set as a Dataset.
func LoadQuery(ctx context.Context, path, query string) (*Dataset, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	d, err := QueryDataset(ctx, db, query)
	if err != nil {
		return nil, err
	}
	d.Name = path
	return d, nil
}

// QueryDataset scans a query's result set into a Dataset. All values are
// coerced to strings; NULL reads as the empty string.
func QueryDataset(ctx context.Context, db *sql.DB, query string) (*Dataset, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	d := &Dataset{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		cells := make([]string, len(cols))
		for i, val := range values {
			switch v := val.(type) {
			case nil:
				cells[i] = ""
			case []byte:
				cells[i] = string(v)
			default:
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		d.Rows = append(d.Rows, &Row{Cells: cells})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
