package accounts

import (
	"os"
	"path/filepath"

	goerrors "github.com/goliatone/go-errors"
)

const (
	accountsDirName = "accounts"
	indexFileName   = "EmailToUsername.json"
	recordPrefix    = "user_"
	recordExt       = ".json"
)

// storagePaths derives the on-disk layout from a base storage root:
// one record file per user under the accounts directory, and a single
// index file at the root.
type storagePaths struct {
	root string
}

// RecordFile returns the path for a username. Keys are case-folded so "Bob"
// and "bob" resolve to the same file.
func (p storagePaths) RecordFile(username string) string {
	return filepath.Join(p.root, accountsDirName, recordPrefix+normalizeUsername(username)+recordExt)
}

// IndexFile returns the path of the email to username table.
func (p storagePaths) IndexFile() string {
	return filepath.Join(p.root, indexFileName)
}

// EnsureAccountsDir creates the storage root and accounts directory if they
// do not exist yet.
func (p storagePaths) EnsureAccountsDir() error {
	dir := filepath.Join(p.root, accountsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create accounts directory")
	}
	return nil
}

// writeFileAtomic writes data through a temp file and renames it into place
// so a concurrent reader never observes a partial write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}

	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}

	return os.Rename(name, path)
}

// removeFileIfExists deletes path, treating an already-missing file as done.
func removeFileIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
