// Package store is a small gob-over-sqlite key-value store. The CLI
// uses it to keep named board saves on disk without dragging in the
// Postgres stack.
package store

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"
	"sync"
)

type Store struct {
	mu    sync.Mutex
	table string
	db    *sql.DB
}

var (
	ErrBadTable = fmt.Errorf("bad table name for store")
	ErrNotFound = fmt.Errorf("value not found")
)

func isLetters(s string) bool {
	for _, c := range s {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return len(s) > 0
}

// New creates a store backed by the named table, creating the table
// when missing. The name may only contain Latin letters because it is
// interpolated into SQL.
func New(db *sql.DB, table string) (*Store, error) {
	if !isLetters(table) {
		return nil, ErrBadTable
	}
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS ` + table + ` (
	key		TEXT PRIMARY KEY,
	value	BLOB
);`)
	if err != nil {
		return nil, err
	}
	return &Store{table: table, db: db}, nil
}

// Get retrieves a value into dest, which must be a pointer or nil.
// Missing keys report [ErrNotFound]. A nil dest discards the payload,
// which is a cheap existence check.
func (s *Store) Get(key string, dest any) error {
	var raw []byte
	err := s.db.QueryRow(
		`SELECT value FROM `+s.table+` WHERE key = ?;`, key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return gob.NewDecoder(bytes.NewReader(raw)).Decode(dest)
}

// Set inserts a new key-value pair or overwrites an existing one.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return err
	}
	_, err := s.db.Exec(`
INSERT INTO `+s.table+` (key, value)
VALUES(?, ?)
ON CONFLICT(key)
DO UPDATE SET value=excluded.value;`,
		key, buf.Bytes())
	return err
}

// Delete removes key without checking whether it existed.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM `+s.table+` WHERE key = ?;`, key)
	return err
}

// Keys lists every stored key in lexical order.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM ` + s.table + ` ORDER BY key;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
