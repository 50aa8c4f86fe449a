package input

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
)

// DuckDBReader loads CSV or Parquet input through an in-memory DuckDB
// instance. DuckDB handles quoting, type sniffing and compressed files;
// all values are read back as strings.
type DuckDBReader struct{}

// Read loads a file into a Table. Files ending in .parquet are read with
// read_parquet, everything else with read_csv_auto.
func (DuckDBReader) Read(path string) (*Table, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	query := fmt.Sprintf(
		"SELECT * FROM read_csv_auto('%s', header=true, all_varchar=true)",
		escapeSQLString(path))
	if strings.HasSuffix(path, ".parquet") {
		query = fmt.Sprintf("SELECT * FROM read_parquet('%s')", escapeSQLString(path))
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query input file: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	table := &Table{Columns: cols}
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return table, nil
}

func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
