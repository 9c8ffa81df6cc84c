package session_test

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/egabank/egabank_portal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*session.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return session.NewStore(path, logger), path
}

func TestStore_StartsLoggedOut(t *testing.T) {
	store, _ := newStore(t)
	assert.Nil(t, store.Current())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
}

func TestStore_SavePersistsUnderCurrentUserKey(t *testing.T) {
	store, path := newStore(t)

	user := session.User{ID: "1", Username: "jean", Role: session.RoleClient, Token: "tok"}
	require.NoError(t, store.Save(user))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok", store.Token())
	assert.Equal(t, session.RoleClient, store.Role())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var envelope map[string]session.User
	require.NoError(t, json.Unmarshal(raw, &envelope))
	persisted, ok := envelope["currentUser"]
	require.True(t, ok, "the record must live under the fixed currentUser key")
	assert.Equal(t, "jean", persisted.Username)
}

func TestStore_ReloadsPersistedSession(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, store.Save(session.User{Username: "awa", Role: session.RoleAdmin, Token: "t"}))

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	reopened := session.NewStore(path, logger)
	user := reopened.Current()
	require.NotNil(t, user)
	assert.Equal(t, "awa", user.Username)
	assert.Equal(t, session.RoleAdmin, reopened.Role())
}

func TestStore_ClearRemovesRecordAndFile(t *testing.T) {
	store, path := newStore(t)
	require.NoError(t, store.Save(session.User{Username: "jean", Token: "t"}))

	store.Clear()

	assert.Nil(t, store.Current())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_CorruptFileDegradesToLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store := session.NewStore(path, logger)
	assert.Nil(t, store.Current())
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	store, _ := newStore(t)
	require.NoError(t, store.Save(session.User{Username: "jean"}))

	first := store.Current()
	first.Username = "mutated"
	assert.Equal(t, "jean", store.Current().Username)
}
