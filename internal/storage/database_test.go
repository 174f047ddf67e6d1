package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadColumnKeysEmpty(t *testing.T) {
	db := openTestDB(t)
	keys, err := db.LoadColumnKeys(context.Background(), "cards")
	require.NoError(t, err)
	assert.Nil(t, keys)
}

func TestSaveAndLoadColumnKeys(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveColumnKeys(ctx, "cards", []string{"noteFld", "retired", "cardDue"}))
	require.NoError(t, db.SaveColumnKeys(ctx, "notes", []string{"noteTags"}))

	keys, err := db.LoadColumnKeys(ctx, "cards")
	require.NoError(t, err)
	assert.Equal(t, []string{"noteFld", "retired", "cardDue"}, keys)

	keys, err = db.LoadColumnKeys(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, []string{"noteTags"}, keys)
}

func TestSaveColumnKeysReplaces(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveColumnKeys(ctx, "cards", []string{"a", "b", "c"}))
	require.NoError(t, db.SaveColumnKeys(ctx, "cards", []string{"c", "a"}))

	keys, err := db.LoadColumnKeys(ctx, "cards")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, keys)
}

func TestSaveColumnKeysAllowsDuplicates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveColumnKeys(ctx, "cards", []string{"", "", "question"}))

	keys, err := db.LoadColumnKeys(ctx, "cards")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", "question"}, keys)
}

func TestClearColumnKeys(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveColumnKeys(ctx, "cards", []string{"question"}))
	require.NoError(t, db.SaveColumnKeys(ctx, "notes", []string{"noteTags"}))
	require.NoError(t, db.ClearColumnKeys(ctx, "cards"))

	keys, err := db.LoadColumnKeys(ctx, "cards")
	require.NoError(t, err)
	assert.Nil(t, keys)

	keys, err = db.LoadColumnKeys(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, []string{"noteTags"}, keys)
}

func TestReopenKeepsSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.SaveColumnKeys(ctx, "notes", []string{"noteFld", "note"}))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	keys, err := db.LoadColumnKeys(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, []string{"noteFld", "note"}, keys)
}
