package accounts

import (
	"encoding/json"

	goerrors "github.com/goliatone/go-errors"
)

// EncodeRecord serializes a user record to its canonical on-disk form.
func EncodeRecord(record *UserRecord) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode user record")
	}
	return data, nil
}

// DecodeRecord parses a record and migrates it to the canonical shape. Absent
// input is an explicit not-found; callers must check existence first rather
// than treat a zero record as a user.
func DecodeRecord(data []byte) (*UserRecord, error) {
	if len(data) == 0 {
		return nil, ErrAccountNotFound
	}

	record := &UserRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to decode user record")
	}

	record.migrate()
	return record, nil
}

// EncodeIndex serializes the email to username table.
func EncodeIndex(table map[string]string) ([]byte, error) {
	data, err := json.Marshal(table)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode email index")
	}
	return data, nil
}

// DecodeIndex parses the email to username table. Absent input decodes to an
// empty table; the file-absent state is owned by the index, not the codec.
func DecodeIndex(data []byte) (map[string]string, error) {
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	table := map[string]string{}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to decode email index")
	}

	return table, nil
}
