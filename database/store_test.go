package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauracmd12/Front-Davivienda/database"
)

func testStore(t *testing.T) *database.Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "store", "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewStore(db)
}

func TestDrafts(t *testing.T) {
	store := testStore(t)

	_, err := store.LoadDraft("clima")
	assert.ErrorIs(t, err, database.ErrNotFound)

	require.NoError(t, store.SaveDraft("clima", []byte(`{"title":"v1"}`)))
	require.NoError(t, store.SaveDraft("clima", []byte(`{"title":"v2"}`)))

	blob, err := store.LoadDraft("clima")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"v2"}`, string(blob))

	names, err := store.ListDrafts()
	require.NoError(t, err)
	assert.Equal(t, []string{"clima"}, names)

	require.NoError(t, store.DeleteDraft("clima"))
	assert.ErrorIs(t, store.DeleteDraft("clima"), database.ErrNotFound)
}

func TestSessionRecordIsSingleRow(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.SaveSession("tok-1", []byte(`{"id":"u-1"}`)))
	require.NoError(t, store.SaveSession("tok-2", []byte(`{"id":"u-1"}`)))

	token, userJSON, err := store.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.JSONEq(t, `{"id":"u-1"}`, string(userJSON))

	require.NoError(t, store.DeleteSession())
	_, _, err = store.LoadSession()
	assert.ErrorIs(t, err, database.ErrNotFound)
}
