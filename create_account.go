package accounts

import (
	"context"
	"encoding/json"

	goerrors "github.com/goliatone/go-errors"
)

// CreateAccountMessage carries the inputs for a new account. The cloud
// payload fields are optional presets passed through untouched.
type CreateAccountMessage struct {
	Email                 string            `json:"email"`
	Username              string            `json:"username"`
	Password              string            `json:"password"`
	CloudBoxes            []json.RawMessage `json:"cloudBoxes,omitempty"`
	CloudTitles           []string          `json:"cloudTitles,omitempty"`
	CloudRandomizerBoxes  []json.RawMessage `json:"cloudRandomizerBoxes,omitempty"`
	CloudRandomizerTitles []string          `json:"cloudRandomizerTitles,omitempty"`
}

// CreateAccount registers a new account: it validates the inputs, persists
// the record and the email index entry, and emails the activation code. If
// delivery fails the whole workflow rolls back so no account is ever left
// pending without a cleanly attempted activation path.
//
// Preconditions are checked in order, first failure wins: email not
// registered, username not taken, email well formed, username well formed,
// password meets policy.
func (m *Manager) CreateAccount(ctx context.Context, msg CreateAccountMessage) error {
	if err := m.lock.Acquire(ctx); err != nil {
		return err
	}
	defer m.lock.Release()

	if m.index.Exists(msg.Email) {
		return withMeta(ErrEmailTaken, map[string]any{"email": msg.Email})
	}
	if m.store.Exists(msg.Username) {
		return withMeta(ErrUsernameTaken, map[string]any{"username": msg.Username})
	}
	if !IsValidEmail(msg.Email) {
		return ErrInvalidEmail
	}
	if !IsValidUsername(msg.Username) {
		return ErrInvalidUsername
	}
	if !IsValidPassword(msg.Password) {
		return ErrInvalidPassword
	}

	hash, err := m.hasher.HashPassword(msg.Password)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	activationCode := generateActivationCode(m.config.GetActivationCodeLength())

	record := &UserRecord{
		Email:                 msg.Email,
		PasswordHash:          hash,
		AccountCode:           generateAccountCode(m.config.GetAccountCodeLength()),
		Activated:             false,
		ActivationCode:        activationCode,
		SchemaVersion:         SchemaVersion,
		CloudBoxes:            msg.CloudBoxes,
		CloudTitles:           msg.CloudTitles,
		CloudRandomizerBoxes:  msg.CloudRandomizerBoxes,
		CloudRandomizerTitles: msg.CloudRandomizerTitles,
		LastAccessed:          m.now().UnixMilli(),
		Stats:                 map[string]int{},
	}

	if err := m.store.Put(msg.Username, record); err != nil {
		return err
	}

	if err := m.index.Upsert(msg.Email, normalizeUsername(msg.Username)); err != nil {
		// keep the two tables consistent: drop the record we just wrote
		m.rollbackCreate(msg.Username, msg.Email)
		return err
	}

	if err := m.mailer.SendActivationEmail(ctx, msg.Email, msg.Username, activationCode); err != nil {
		m.rollbackCreate(msg.Username, msg.Email)
		return goerrors.Wrap(err, goerrors.CategoryOperation, "could not deliver activation email").
			WithTextCode(textCodeDeliveryFailed)
	}

	m.debugRecord("created account record", record)
	m.recordActivity(ctx, ActivityEvent{
		EventType:  ActivityEventAccountCreated,
		Username:   msg.Username,
		Email:      msg.Email,
		FromStatus: StatusUnregistered,
		ToStatus:   StatusPending,
	})

	return nil
}

// rollbackCreate removes whatever half of the create made it to disk. Errors
// are logged, not returned: the workflow already failed and the caller gets
// the original cause.
func (m *Manager) rollbackCreate(username, email string) {
	if err := m.store.Delete(username); err != nil {
		m.logger.Error("rollback failed to remove record for %s: %v", username, err)
	}
	if err := m.index.Remove(email); err != nil {
		m.logger.Error("rollback failed to remove index entry for %s: %v", email, err)
	}
}
