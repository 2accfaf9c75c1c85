// Package database holds the local sqlite store: the saved session and the
// survey drafts being authored. This is client-side state only; nothing the
// service owns is ever cached here.
package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func Open(path string) (db *sql.DB, err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return
		}
	}

	db, err = sql.Open("sqlite3", path)
	if err != nil {
		return
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return
	}

	// a single-user local store needs no pool to speak of
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return
	}

	return
}
