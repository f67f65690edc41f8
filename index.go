package accounts

import (
	"os"
)

// EmailIndex is the single table mapping registered email to username. It is
// the sole source of truth for whether an email already has an account. An
// empty table is represented by an absent file, never an empty one.
//
// Like the record store it does no locking; the manager guards mutations.
type EmailIndex struct {
	paths storagePaths
}

// NewEmailIndex builds an index rooted at the given directory.
func NewEmailIndex(root string) *EmailIndex {
	return &EmailIndex{paths: storagePaths{root: root}}
}

// Exists reports whether the email has an account. Malformed emails report
// false without touching the disk.
func (i *EmailIndex) Exists(email string) bool {
	if !IsValidEmail(email) {
		return false
	}

	table, err := i.load()
	if err != nil {
		return false
	}

	_, ok := table[email]
	return ok
}

// Lookup resolves an email to its username. A missing entry yields
// ErrAccountNotFound.
func (i *EmailIndex) Lookup(email string) (string, error) {
	table, err := i.load()
	if err != nil {
		return "", err
	}

	username, ok := table[email]
	if !ok {
		return "", ErrAccountNotFound
	}

	return username, nil
}

// Upsert adds or overwrites one mapping and persists the whole table.
func (i *EmailIndex) Upsert(email, username string) error {
	table, err := i.load()
	if err != nil {
		return err
	}

	table[email] = username
	return i.save(table)
}

// Remove drops a mapping and persists. Removing an absent email is a no-op.
func (i *EmailIndex) Remove(email string) error {
	if email == "" {
		return nil
	}

	table, err := i.load()
	if err != nil {
		return err
	}

	if _, ok := table[email]; !ok {
		return nil
	}

	delete(table, email)
	return i.save(table)
}

func (i *EmailIndex) load() (map[string]string, error) {
	data, err := os.ReadFile(i.paths.IndexFile())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, storageError(err, "failed to read email index")
	}

	return DecodeIndex(data)
}

func (i *EmailIndex) save(table map[string]string) error {
	path := i.paths.IndexFile()

	// empty table deletes the file, mirroring the record store rule
	if len(table) == 0 {
		if err := removeFileIfExists(path); err != nil {
			return storageError(err, "failed to remove email index")
		}
		return nil
	}

	if err := i.paths.EnsureAccountsDir(); err != nil {
		return err
	}

	data, err := EncodeIndex(table)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return storageError(err, "failed to write email index")
	}

	return nil
}
