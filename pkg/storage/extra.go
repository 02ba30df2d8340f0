package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Info returns the module's info table as name/value pairs. A module
// without an info table yields an empty map.
func (d *DB) Info(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	rows, err := d.sql.QueryContext(ctx, "SELECT name, value FROM info")
	if err != nil {
		if isMissingTable(err) {
			return out, nil
		}
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name, value sql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		if name.Valid {
			out[name.String] = value.String
		}
	}
	return out, rows.Err()
}

// InfoValue returns one value from the info table, or "" if the table or
// the name is missing.
func (d *DB) InfoValue(ctx context.Context, name string) (string, error) {
	var value sql.NullString
	err := d.sql.QueryRowContext(ctx, "SELECT value FROM info WHERE name = ?", name).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows), err != nil && isMissingTable(err):
		return "", nil
	case err != nil:
		return "", err
	}
	return value.String, nil
}

func isMissingTable(err error) bool {
	return strings.Contains(err.Error(), "no such table")
}
