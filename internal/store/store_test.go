package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := New(db, "teststore")
	require.NoError(t, err)
	return s
}

func TestStoreBadTableName(t *testing.T) {
	for _, name := range []string{"", "no good", "drop;table", "v2"} {
		_, err := New(nil, name)
		assert.ErrorIs(t, err, ErrBadTable, "name %q", name)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := setupTestStore(t)
	var v int
	assert.ErrorIs(t, s.Get("absent", &v), ErrNotFound)
}

func TestStoreSetGet(t *testing.T) {
	s := setupTestStore(t)

	type save struct {
		Name  string
		State []byte
	}
	want := save{Name: "morning run", State: []byte{1, 2, 3}}
	require.NoError(t, s.Set("slot", want))

	var got save
	require.NoError(t, s.Get("slot", &got))
	assert.Equal(t, want, got)

	// nil dest is an existence check
	assert.NoError(t, s.Get("slot", nil))
}

func TestStoreOverwrite(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Set("slot", 1))
	require.NoError(t, s.Set("slot", 2))

	var got int
	require.NoError(t, s.Get("slot", &got))
	assert.Equal(t, 2, got)
}

func TestStoreDeleteAndKeys(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Set("b", 1))
	require.NoError(t, s.Set("a", 2))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, s.Delete("a"))
	require.NoError(t, s.Delete("never existed"))

	keys, err = s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
}
