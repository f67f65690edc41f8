package accounts

import (
	"context"
	"encoding/json"
)

// SaveCloudData overwrites the account's stored cloud payload. The
// randomizer and non-randomizer pairs are mutually exclusive targets; a save
// only ever touches the pair selected by isRandomizer. The payload is opaque
// here and carries no validation responsibility.
func (m *Manager) SaveCloudData(ctx context.Context, username string, boxes []json.RawMessage, titles []string, isRandomizer bool) error {
	if err := m.lock.Acquire(ctx); err != nil {
		return err
	}
	defer m.lock.Release()

	record, err := m.store.Get(username)
	if err != nil {
		return err
	}

	if isRandomizer {
		record.CloudRandomizerBoxes = boxes
		record.CloudRandomizerTitles = titles
	} else {
		record.CloudBoxes = boxes
		record.CloudTitles = titles
	}

	return m.store.Put(username, record)
}

// CloudBoxes returns the stored payload blobs for the account. Missing
// accounts yield an empty slice, matching the read-accessor contract.
func (m *Manager) CloudBoxes(username string, isRandomizer bool) []json.RawMessage {
	record, err := m.store.Get(username)
	if err != nil {
		return nil
	}

	if isRandomizer {
		return record.CloudRandomizerBoxes
	}
	return record.CloudBoxes
}

// CloudTitles returns the stored box names for the account.
func (m *Manager) CloudTitles(username string, isRandomizer bool) []string {
	record, err := m.store.Get(username)
	if err != nil {
		return nil
	}

	if isRandomizer {
		return record.CloudRandomizerTitles
	}
	return record.CloudTitles
}
