package accounts

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Activate flips an account from pending to active when the submitted code
// exactly matches the stored activation code. The code is dropped from the
// record on success, so replaying it after activation fails rather than
// silently succeeding.
func (m *Manager) Activate(ctx context.Context, username, code string) error {
	if err := m.lock.Acquire(ctx); err != nil {
		return err
	}
	defer m.lock.Release()

	record, err := m.store.Get(username)
	if err != nil {
		return err
	}

	if !CanTransition(record.Status(), StatusActive) {
		// already active: a stale code must fail, not silently succeed
		return withMeta(ErrInvalidActivationCode, map[string]any{"username": username})
	}

	// an activated record has no stored code; comparing against the empty
	// string would let Activate(u, "") slip through
	if code == "" || record.ActivationCode != code {
		return withMeta(ErrInvalidActivationCode, map[string]any{"username": username})
	}

	record.Activated = true
	record.ActivationCode = ""

	if err := m.store.Put(username, record); err != nil {
		return err
	}

	m.recordActivity(ctx, ActivityEvent{
		EventType:  ActivityEventAccountActivated,
		Username:   username,
		Email:      record.Email,
		FromStatus: StatusPending,
		ToStatus:   StatusActive,
	})

	return nil
}

// ResendActivation re-sends the stored activation code to the account's
// registered email. It mutates nothing so it does not take the store lock.
func (m *Manager) ResendActivation(ctx context.Context, username string) error {
	record, err := m.store.Get(username)
	if err != nil {
		return err
	}

	if record.ActivationCode == "" {
		return withMeta(ErrInvalidActivationCode, map[string]any{
			"username": username,
			"reason":   "account already activated",
		})
	}

	if err := m.mailer.SendActivationEmail(ctx, record.Email, username, record.ActivationCode); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "could not deliver activation email").
			WithTextCode(textCodeDeliveryFailed)
	}

	return nil
}
