package accounts_test

import (
	"context"
	"testing"

	accounts "github.com/goliatone/go-accounts"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureMetadataStaysPerCall(t *testing.T) {
	ctx := context.Background()
	manager, _, _ := newTestManager(t)

	require.NoError(t, manager.CreateAccount(ctx, accounts.CreateAccountMessage{
		Email: "a@x.com", Username: "Ash", Password: "secret1",
	}))
	require.NoError(t, manager.CreateAccount(ctx, accounts.CreateAccountMessage{
		Email: "b@x.com", Username: "Brock", Password: "secret1",
	}))

	first := manager.Activate(ctx, "ash", "wrong1")
	require.ErrorIs(t, first, accounts.ErrInvalidActivationCode)

	second := manager.Activate(ctx, "brock", "wrong2")
	require.ErrorIs(t, second, accounts.ErrInvalidActivationCode)

	var firstRich *goerrors.Error
	require.True(t, goerrors.As(first, &firstRich))
	assert.Equal(t, "ash", firstRich.Metadata["username"])

	var secondRich *goerrors.Error
	require.True(t, goerrors.As(second, &secondRich))
	assert.Equal(t, "brock", secondRich.Metadata["username"])

	// the shared sentinel never accumulates per-call state
	assert.Empty(t, accounts.ErrInvalidActivationCode.Metadata)
}
