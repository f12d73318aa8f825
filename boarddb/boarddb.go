/*
Package boarddb implements a small local sqlite catalogue of collected
share codes. Each entry holds the board name, the share code itself and
the decoded document as JSON so the catalogue stays useful without
decoding codes again.
*/
package boarddb

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB is an open board catalogue.
type DB struct {
	db *sql.DB
}

// Entry is one catalogued board.
type Entry struct {
	Name     string
	Code     string
	Document string
	AddedAt  time.Time
}

// Open opens (and if necessary creates) the catalogue in the given file.
func Open(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS board (id INTEGER PRIMARY KEY NOT NULL, name STRING NOT NULL UNIQUE, code TEXT NOT NULL, document TEXT NOT NULL, added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)"); err != nil {
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

// Close closes the catalogue.
func (db *DB) Close() error {
	return db.db.Close()
}

// Put stores a board under a name, replacing any existing entry with that
// name. Callers are expected to have decoded the share code already so the
// catalogue never holds an undecodable one.
func (db *DB) Put(name, code, document string) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO board (name, code, document) VALUES (?, ?, ?)", name, code, document); err != nil {
		return err
	}
	return nil
}

// Get returns the entry stored under a name, or nil if there is none.
func (db *DB) Get(name string) (*Entry, error) {
	e := Entry{Name: name}
	switch err := db.db.QueryRow("SELECT code, document, added_at FROM board WHERE name = ?", name).Scan(&e.Code, &e.Document, &e.AddedAt); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &e, nil
	default:
		return nil, err
	}
}

// List returns every entry ordered by name.
func (db *DB) List() ([]Entry, error) {
	rows, err := db.db.Query("SELECT name, code, document, added_at FROM board ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Code, &e.Document, &e.AddedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Remove deletes the entry stored under a name, if any.
func (db *DB) Remove(name string) error {
	if _, err := db.db.Exec("DELETE FROM board WHERE name = ?", name); err != nil {
		return err
	}
	return nil
}
