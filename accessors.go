package accounts

import (
	"context"
	"time"
)

// Exists reports whether an account exists for the username.
func (m *Manager) Exists(username string) bool {
	return m.store.Exists(username)
}

// EmailExists reports whether the email already has an account.
func (m *Manager) EmailExists(email string) bool {
	return m.index.Exists(email)
}

// EmailToUsername resolves a registered email to its username.
func (m *Manager) EmailToUsername(email string) (string, error) {
	return m.index.Lookup(email)
}

// UsernameToEmail returns the email registered for the account.
func (m *Manager) UsernameToEmail(username string) (string, error) {
	record, err := m.store.Get(username)
	if err != nil {
		return "", err
	}
	return record.Email, nil
}

// IsActivated reports whether the account finished activation. Missing
// accounts report false.
func (m *Manager) IsActivated(username string) bool {
	record, err := m.store.Get(username)
	if err != nil {
		return false
	}
	return record.Activated
}

// ActivationCode returns the pending activation code for the account, empty
// once activated.
func (m *Manager) ActivationCode(username string) (string, error) {
	record, err := m.store.Get(username)
	if err != nil {
		return "", err
	}
	return record.ActivationCode, nil
}

// AccountCode returns the stable opaque identifier issued at creation.
func (m *Manager) AccountCode(username string) (string, error) {
	record, err := m.store.Get(username)
	if err != nil {
		return "", err
	}
	return record.AccountCode, nil
}

// LastAccessed returns the last time the account was touched. Missing
// accounts yield the zero time.
func (m *Manager) LastAccessed(username string) time.Time {
	record, err := m.store.Get(username)
	if err != nil {
		return time.Time{}
	}
	return record.LastAccessedTime()
}

// StatusOf derives the lifecycle state for the username.
func (m *Manager) StatusOf(username string) AccountStatus {
	record, err := m.store.Get(username)
	if err != nil {
		return StatusUnregistered
	}
	return record.Status()
}

// UpdateLastAccessed stamps the account's last-accessed timestamp with the
// current time.
func (m *Manager) UpdateLastAccessed(ctx context.Context, username string) error {
	if err := m.lock.Acquire(ctx); err != nil {
		return err
	}
	defer m.lock.Release()

	record, err := m.store.Get(username)
	if err != nil {
		return err
	}

	record.Touch(m.now())

	if err := m.store.Put(username, record); err != nil {
		return err
	}

	m.recordActivity(ctx, ActivityEvent{
		EventType: ActivityEventAccessTouched,
		Username:  username,
		Email:     record.Email,
	})

	return nil
}
