package accounts

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// RequestPasswordReset emails a one-time reset code to the account that owns
// the email. The code and its send time are persisted on the record (present
// only while a reset is pending, like the activation code). Requests inside
// the cooldown window are rejected.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) error {
	if err := m.lock.Acquire(ctx); err != nil {
		return err
	}
	defer m.lock.Release()

	username, err := m.index.Lookup(email)
	if err != nil {
		return err
	}

	record, err := m.store.Get(username)
	if err != nil {
		return err
	}

	now := m.now()
	if record.ResetCodeSentAt != 0 &&
		IsWithinPeriod(time.UnixMilli(record.ResetCodeSentAt), m.config.GetResetCooldown(), now) {
		return withMeta(ErrResetCooldown, map[string]any{"username": username})
	}

	// reset codes share the activation code shape
	code := generateResetCode(m.config.GetActivationCodeLength())
	record.ResetCode = code
	record.ResetCodeSentAt = now.UnixMilli()

	if err := m.store.Put(username, record); err != nil {
		return err
	}

	if err := m.mailer.SendPasswordResetEmail(ctx, email, username, code); err != nil {
		// leave the record as it was before the request
		record.ClearReset()
		if err2 := m.store.Put(username, record); err2 != nil {
			m.logger.Error("failed to clear reset state for %s after delivery failure: %v", username, err2)
		}
		return goerrors.Wrap(err, goerrors.CategoryOperation, "could not deliver password reset email").
			WithTextCode(textCodeDeliveryFailed)
	}

	m.recordActivity(ctx, ActivityEvent{
		EventType: ActivityEventResetRequested,
		Username:  username,
		Email:     email,
	})

	return nil
}

// ResetPassword changes the password for the account that owns the email,
// provided the submitted code matches the pending reset code and has not
// expired. On success the reset state is cleared and the new hash persisted;
// on any failure the record is left untouched.
func (m *Manager) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := m.lock.Acquire(ctx); err != nil {
		return err
	}
	defer m.lock.Release()

	username, err := m.index.Lookup(email)
	if err != nil {
		return err
	}

	if !IsValidPassword(newPassword) {
		return ErrInvalidPassword
	}

	record, err := m.store.Get(username)
	if err != nil {
		return err
	}

	if !record.ResetPending() || code == "" || record.ResetCode != code {
		return withMeta(ErrInvalidResetCode, map[string]any{"username": username})
	}

	if IsOutsidePeriod(time.UnixMilli(record.ResetCodeSentAt), m.config.GetResetCodeTTL(), m.now()) {
		return withMeta(ErrResetCodeExpired, map[string]any{"username": username})
	}

	hash, err := m.hasher.HashPassword(newPassword)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	record.PasswordHash = hash
	record.ClearReset()

	if err := m.store.Put(username, record); err != nil {
		return err
	}

	m.recordActivity(ctx, ActivityEvent{
		EventType: ActivityEventPasswordChanged,
		Username:  username,
		Email:     email,
	})

	return nil
}
