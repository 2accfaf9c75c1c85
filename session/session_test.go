package session_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauracmd12/Front-Davivienda/database"
	"github.com/lauracmd12/Front-Davivienda/model"
	"github.com/lauracmd12/Front-Davivienda/session"
)

func testStore(t *testing.T) *database.Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewStore(db)
}

func TestLoadWithoutRecord(t *testing.T) {
	s := session.Load(testStore(t))
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.UserID())
	assert.Empty(t, s.Token())
}

func TestSignInRoundTrip(t *testing.T) {
	store := testStore(t)

	s := session.Load(store)
	user := model.User{ID: "u-1", Email: "ana@example.com", Name: "Ana"}
	require.NoError(t, s.SignIn("tok-1", user))
	assert.True(t, s.Authenticated())

	// a fresh load sees the same session
	again := session.Load(store)
	assert.True(t, again.Authenticated())
	assert.Equal(t, "u-1", again.UserID())
	assert.Equal(t, "tok-1", again.Token())
	assert.Equal(t, user, again.User())
}

func TestSignInRejectsUnusableSession(t *testing.T) {
	s := session.Load(testStore(t))
	assert.Error(t, s.SignIn("", model.User{ID: "u-1"}))
	assert.Error(t, s.SignIn("tok-1", model.User{}))
	assert.False(t, s.Authenticated())
}

func TestSignOut(t *testing.T) {
	store := testStore(t)

	s := session.Load(store)
	require.NoError(t, s.SignIn("tok-1", model.User{ID: "u-1"}))
	require.NoError(t, s.SignOut())
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.UserID())

	assert.False(t, session.Load(store).Authenticated())
}

func TestLoadClearsCorruptRecord(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SaveSession("tok-1", []byte("{not json")))

	s := session.Load(store)
	assert.False(t, s.Authenticated())

	// the corrupt record is gone
	_, _, err := store.LoadSession()
	assert.True(t, errors.Is(err, database.ErrNotFound))
}

func TestLoadRejectsUserWithoutID(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SaveSession("tok-1", []byte(`{"email":"ana@example.com"}`)))

	assert.False(t, session.Load(store).Authenticated())
}
