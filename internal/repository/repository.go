package repository

import (
	"database/sql"
	"strings"
)

// affected converts a statement result into the shared row-count contract:
// true iff at least one row was touched.
func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// seedIfEmpty runs the seed script when the count query reports an empty
// table. The check and the inserts share one transaction so a concurrent
// first start cannot double-seed.
func seedIfEmpty(db *sql.DB, countQuery, script string) error {
	if script == "" {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(countQuery).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, stmt := range strings.Split(script, "\n") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}
