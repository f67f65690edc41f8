package accounts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	accounts "github.com/goliatone/go-accounts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPendingReset(t *testing.T) (*accounts.Manager, *okMailer, *testClock) {
	t.Helper()

	manager, mailer, clock := newTestManager(t)
	require.NoError(t, manager.CreateAccount(context.Background(), accounts.CreateAccountMessage{
		Email: "a@x.com", Username: "Ash", Password: "secret1",
	}))
	require.NoError(t, manager.RequestPasswordReset(context.Background(), "a@x.com"))
	return manager, mailer, clock
}

func TestRequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the code and sends it", func(t *testing.T) {
		manager, mailer, _ := setupPendingReset(t)

		record, err := manager.Store().Get("ash")
		require.NoError(t, err)
		assert.Len(t, record.ResetCode, 6)
		assert.Equal(t, record.ResetCode, mailer.resetCode)
		assert.NotZero(t, record.ResetCodeSentAt)
	})

	t.Run("Unknown email", func(t *testing.T) {
		manager, _, _ := newTestManager(t)

		err := manager.RequestPasswordReset(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
	})

	t.Run("Cooldown blocks a second request", func(t *testing.T) {
		manager, _, clock := setupPendingReset(t)

		err := manager.RequestPasswordReset(ctx, "a@x.com")
		assert.ErrorIs(t, err, accounts.ErrResetCooldown)

		clock.Advance(61 * time.Minute)
		assert.NoError(t, manager.RequestPasswordReset(ctx, "a@x.com"))
	})

	t.Run("Delivery failure leaves no pending reset", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("SendActivationEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil)
		mailer.On("SendPasswordResetEmail", mock.Anything, "a@x.com", "ash", mock.Anything).
			Return(errors.New("smtp unreachable")).Once()

		cfg := accounts.NewSimpleConfig(t.TempDir())
		manager := accounts.NewManager(cfg,
			accounts.WithMailer(mailer),
			accounts.WithHasher(fastHasher{}),
		)

		require.NoError(t, manager.CreateAccount(ctx, accounts.CreateAccountMessage{
			Email: "a@x.com", Username: "Ash", Password: "secret1",
		}))

		err := manager.RequestPasswordReset(ctx, "a@x.com")
		require.Error(t, err)

		record, err := manager.Store().Get("ash")
		require.NoError(t, err)
		assert.False(t, record.ResetPending())
		assert.False(t, manager.Lock().IsHeld())

		mailer.AssertExpectations(t)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path changes the password", func(t *testing.T) {
		manager, mailer, _ := setupPendingReset(t)

		require.NoError(t, manager.ResetPassword(ctx, "a@x.com", mailer.resetCode, "newsecret"))

		assert.True(t, manager.VerifyPassword("ash", "newsecret"))
		assert.False(t, manager.VerifyPassword("ash", "secret1"))

		record, err := manager.Store().Get("ash")
		require.NoError(t, err)
		assert.False(t, record.ResetPending())
	})

	t.Run("Wrong code", func(t *testing.T) {
		manager, _, _ := setupPendingReset(t)

		err := manager.ResetPassword(ctx, "a@x.com", "nope99", "newsecret")
		assert.ErrorIs(t, err, accounts.ErrInvalidResetCode)
		assert.True(t, manager.VerifyPassword("ash", "secret1"))
	})

	t.Run("Empty code never matches", func(t *testing.T) {
		manager, _, _ := newTestManager(t)
		require.NoError(t, manager.CreateAccount(ctx, accounts.CreateAccountMessage{
			Email: "a@x.com", Username: "Ash", Password: "secret1",
		}))

		// no reset pending at all
		err := manager.ResetPassword(ctx, "a@x.com", "", "newsecret")
		assert.ErrorIs(t, err, accounts.ErrInvalidResetCode)
	})

	t.Run("Expired code", func(t *testing.T) {
		manager, mailer, clock := setupPendingReset(t)

		clock.Advance(2 * time.Hour)

		err := manager.ResetPassword(ctx, "a@x.com", mailer.resetCode, "newsecret")
		assert.ErrorIs(t, err, accounts.ErrResetCodeExpired)
		assert.True(t, manager.VerifyPassword("ash", "secret1"))
	})

	t.Run("Invalid new password", func(t *testing.T) {
		manager, mailer, _ := setupPendingReset(t)

		err := manager.ResetPassword(ctx, "a@x.com", mailer.resetCode, "nope")
		assert.ErrorIs(t, err, accounts.ErrInvalidPassword)
	})

	t.Run("Unknown email", func(t *testing.T) {
		manager, _, _ := newTestManager(t)

		err := manager.ResetPassword(ctx, "nobody@x.com", "abc123", "newsecret")
		assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
	})
}
