package boarddb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "stgy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestPutGet(t *testing.T) {
	db := open(t)

	require.NoError(t, db.Put("raid", "[stgy:a...]", `{"name":"raid"}`))

	e, err := db.Get("raid")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "raid", e.Name)
	assert.Equal(t, "[stgy:a...]", e.Code)
	assert.Equal(t, `{"name":"raid"}`, e.Document)
	assert.False(t, e.AddedAt.IsZero())
}

func TestGetMissing(t *testing.T) {
	db := open(t)

	e, err := db.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestPutReplaces(t *testing.T) {
	db := open(t)

	require.NoError(t, db.Put("raid", "old", "{}"))
	require.NoError(t, db.Put("raid", "new", "{}"))

	e, err := db.Get("raid")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "new", e.Code)

	entries, err := db.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestList(t *testing.T) {
	db := open(t)

	require.NoError(t, db.Put("beta", "b", "{}"))
	require.NoError(t, db.Put("alpha", "a", "{}"))

	entries, err := db.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "beta", entries[1].Name)
}

func TestRemove(t *testing.T) {
	db := open(t)

	require.NoError(t, db.Put("raid", "code", "{}"))
	require.NoError(t, db.Remove("raid"))

	e, err := db.Get("raid")
	require.NoError(t, err)
	assert.Nil(t, e)

	// Removing a missing entry is not an error
	require.NoError(t, db.Remove("raid"))
}
