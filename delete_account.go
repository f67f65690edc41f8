package accounts

import (
	"context"
)

// VerifyPassword reports whether the password matches the stored hash for
// the account. It returns false for malformed usernames or passwords before
// touching the hash comparator, and false for missing accounts. Storage
// failures also report false; the diagnostic lands in the log.
func (m *Manager) VerifyPassword(username, password string) bool {
	if !IsValidUsername(username) || !IsValidPassword(password) {
		return false
	}

	record, err := m.store.Get(username)
	if err != nil {
		if !IsNotFound(err) {
			m.logger.Error("failed to read record verifying password for %s: %v", username, err)
		}
		return false
	}

	return m.hasher.ComparePasswordAndHash(password, record.PasswordHash) == nil
}

// DeleteAccount removes the record and its email index entry. The caller
// must present the account's password. The registered email is read before
// the record is destroyed so the index entry can still be resolved.
func (m *Manager) DeleteAccount(ctx context.Context, username, password string) error {
	if err := m.lock.Acquire(ctx); err != nil {
		return err
	}
	defer m.lock.Release()

	record, err := m.store.Get(username)
	if err != nil {
		return err
	}

	if !IsValidPassword(password) || m.hasher.ComparePasswordAndHash(password, record.PasswordHash) != nil {
		return withMeta(ErrMismatchedHashAndPassword, map[string]any{"username": username})
	}

	email := record.Email

	if err := m.store.Delete(username); err != nil {
		return err
	}

	if err := m.index.Remove(email); err != nil {
		return err
	}

	m.recordActivity(ctx, ActivityEvent{
		EventType:  ActivityEventAccountDeleted,
		Username:   username,
		Email:      email,
		FromStatus: record.Status(),
		ToStatus:   StatusUnregistered,
	})

	return nil
}
