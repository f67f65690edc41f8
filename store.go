package accounts

import (
	"os"
	"strings"
)

// normalizeUsername case-folds a username to its canonical storage key.
func normalizeUsername(username string) string {
	return strings.ToLower(username)
}

// RecordStore is CRUD over per-user record files keyed by the case-folded
// username. It performs no locking of its own; the lifecycle manager holds
// the StoreLock around every mutation.
type RecordStore struct {
	paths storagePaths
}

// NewRecordStore builds a store rooted at the given directory.
func NewRecordStore(root string) *RecordStore {
	return &RecordStore{paths: storagePaths{root: root}}
}

// Exists reports whether a record file exists for the username. Usernames
// failing the validity predicate report false without touching the disk.
func (s *RecordStore) Exists(username string) bool {
	if !IsValidUsername(username) {
		return false
	}

	_, err := os.Stat(s.paths.RecordFile(username))
	return err == nil
}

// Get reads and decodes the record for a username. A missing file yields
// ErrAccountNotFound, never a default-valued record. Usernames failing the
// validity predicate cannot name a record file, so they report not found
// before any path is derived.
func (s *RecordStore) Get(username string) (*UserRecord, error) {
	if !IsValidUsername(username) {
		return nil, ErrAccountNotFound
	}

	data, err := os.ReadFile(s.paths.RecordFile(username))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAccountNotFound
		}
		return nil, storageError(err, "failed to read user record")
	}

	return DecodeRecord(data)
}

// Put persists the record for a username, creating parent directories as
// needed. Storing the canonical empty record removes the backing file. The
// username must pass the validity predicate before a path is derived from it.
func (s *RecordStore) Put(username string, record *UserRecord) error {
	if !IsValidUsername(username) {
		return ErrInvalidUsername
	}

	if err := s.paths.EnsureAccountsDir(); err != nil {
		return err
	}

	path := s.paths.RecordFile(username)

	if record.IsEmpty() {
		if err := removeFileIfExists(path); err != nil {
			return storageError(err, "failed to remove user record")
		}
		return nil
	}

	data, err := EncodeRecord(record)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return storageError(err, "failed to write user record")
	}

	return nil
}

// Delete removes the record file for a username.
func (s *RecordStore) Delete(username string) error {
	return s.Put(username, &UserRecord{})
}
