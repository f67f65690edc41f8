package accounts_test

import (
	"os"
	"path/filepath"
	"testing"

	accounts "github.com/goliatone/go-accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *accounts.UserRecord {
	return &accounts.UserRecord{
		Email:          "ash@example.com",
		PasswordHash:   "hashed:secret1",
		AccountCode:    "A1b2C3d4E5f6",
		ActivationCode: "x7k2p9",
		SchemaVersion:  accounts.SchemaVersion,
		LastAccessed:   1740000000000,
		Stats:          map[string]int{},
	}
}

func TestRecordStorePutGet(t *testing.T) {
	store := accounts.NewRecordStore(t.TempDir())
	record := testRecord()

	require.NoError(t, store.Put("Ash", record))

	got, err := store.Get("Ash")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestRecordStoreKeysAreCaseFolded(t *testing.T) {
	store := accounts.NewRecordStore(t.TempDir())

	require.NoError(t, store.Put("Ash", testRecord()))

	assert.True(t, store.Exists("ash"))
	assert.True(t, store.Exists("ASH"))
	assert.True(t, store.Exists("Ash"))

	got, err := store.Get("aSh")
	require.NoError(t, err)
	assert.Equal(t, "ash@example.com", got.Email)
}

func TestRecordStoreGetMissingIsNotFound(t *testing.T) {
	store := accounts.NewRecordStore(t.TempDir())

	_, err := store.Get("nobody")
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
}

func TestRecordStoreEmptyPutDeletes(t *testing.T) {
	root := t.TempDir()
	store := accounts.NewRecordStore(root)

	require.NoError(t, store.Put("Ash", testRecord()))
	require.True(t, store.Exists("ash"))

	require.NoError(t, store.Put("Ash", &accounts.UserRecord{}))
	assert.False(t, store.Exists("ash"))

	// the backing file is gone, not empty
	entries, err := os.ReadDir(filepath.Join(root, "accounts"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordStoreDeleteMissingIsNoop(t *testing.T) {
	store := accounts.NewRecordStore(t.TempDir())
	assert.NoError(t, store.Delete("nobody"))
}

func TestRecordStoreExistsRejectsInvalidUsernames(t *testing.T) {
	store := accounts.NewRecordStore(t.TempDir())

	assert.False(t, store.Exists(""))
	assert.False(t, store.Exists("a"))
	assert.False(t, store.Exists("../../etc/passwd"))
}

func TestRecordStoreRejectsPathEscapes(t *testing.T) {
	base := t.TempDir()

	// a JSON file outside the storage root that a crafted username would
	// otherwise reach through path cleaning
	outside := filepath.Join(base, "secret.json")
	require.NoError(t, os.WriteFile(outside, []byte(`{"email":"leaked@x.com","password":"h","accountCode":"c"}`), 0o600))

	store := accounts.NewRecordStore(filepath.Join(base, "store"))

	_, err := store.Get("/../../../secret")
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)

	err = store.Put("/../../../secret", testRecord())
	assert.ErrorIs(t, err, accounts.ErrInvalidUsername)

	err = store.Delete("/../../../secret")
	assert.ErrorIs(t, err, accounts.ErrInvalidUsername)

	// the outside file is untouched
	data, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Contains(t, string(data), "leaked@x.com")
}
