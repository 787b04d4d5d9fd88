package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dori/tablero/internal/store"
	"github.com/mattn/go-sqlite3"
)

// classify maps driver errors onto the store sentinels
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", store.ErrConstraint, sqliteErr)
	}
	return err
}

// mustAffect turns an UPDATE that matched no rows into ErrNotFound
func mustAffect(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
