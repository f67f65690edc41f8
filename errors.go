package accounts

import (
	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeEmailTaken        = "EMAIL_TAKEN"
	textCodeUsernameTaken     = "USERNAME_TAKEN"
	textCodeInvalidEmail      = "INVALID_EMAIL"
	textCodeInvalidUsername   = "INVALID_USERNAME"
	textCodeInvalidPassword   = "INVALID_PASSWORD"
	textCodeAccountNotFound   = "ACCOUNT_NOT_FOUND"
	textCodeWrongPassword     = "WRONG_PASSWORD"
	textCodeWrongCode         = "WRONG_ACTIVATION_CODE"
	textCodeDeliveryFailed    = "DELIVERY_FAILED"
	textCodeResetCodeExpired  = "RESET_CODE_TOO_OLD"
	textCodeResetCooldown     = "PASSWORD_RESET_COOLDOWN"
	textCodeInvalidResetCode  = "INVALID_RESET_CODE"
	textCodeStoreBusy         = "STORE_BUSY"
	textCodeStorageError      = "STORAGE_ERROR"
)

// ErrEmailTaken is returned when the email already resolves to an account.
var ErrEmailTaken = goerrors.New("an account with that email already exists", goerrors.CategoryConflict).
	WithTextCode(textCodeEmailTaken).
	WithCode(goerrors.CodeConflict)

// ErrUsernameTaken is returned when the username already has a record.
var ErrUsernameTaken = goerrors.New("an account with that username already exists", goerrors.CategoryConflict).
	WithTextCode(textCodeUsernameTaken).
	WithCode(goerrors.CodeConflict)

// ErrInvalidEmail rejects malformed email addresses before any I/O.
var ErrInvalidEmail = goerrors.New("not a valid email address", goerrors.CategoryValidation).
	WithTextCode(textCodeInvalidEmail).
	WithCode(goerrors.CodeBadRequest)

// ErrInvalidUsername rejects malformed usernames before any I/O.
var ErrInvalidUsername = goerrors.New("not a valid username", goerrors.CategoryValidation).
	WithTextCode(textCodeInvalidUsername).
	WithCode(goerrors.CodeBadRequest)

// ErrInvalidPassword rejects passwords outside the policy before hashing.
var ErrInvalidPassword = goerrors.New("not a valid password", goerrors.CategoryValidation).
	WithTextCode(textCodeInvalidPassword).
	WithCode(goerrors.CodeBadRequest)

// ErrAccountNotFound is returned when operating on a nonexistent account.
var ErrAccountNotFound = goerrors.New("account does not exist", goerrors.CategoryNotFound).
	WithTextCode(textCodeAccountNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrMismatchedHashAndPassword is the generic wrong-credentials failure.
var ErrMismatchedHashAndPassword = goerrors.New("password does not match", goerrors.CategoryAuth).
	WithTextCode(textCodeWrongPassword)

// ErrInvalidActivationCode is returned when the submitted code does not
// exactly match the stored one, including reuse after a prior activation.
var ErrInvalidActivationCode = goerrors.New("activation code is incorrect", goerrors.CategoryAuth).
	WithTextCode(textCodeWrongCode)

// ErrDeliveryFailed signals the mail collaborator could not send. During
// CreateAccount it triggers a full rollback of the record and index entry.
var ErrDeliveryFailed = goerrors.New("could not deliver email", goerrors.CategoryOperation).
	WithTextCode(textCodeDeliveryFailed)

// ErrResetCodeExpired is returned when a password reset code is past its TTL.
var ErrResetCodeExpired = goerrors.New("password reset code has expired", goerrors.CategoryAuth).
	WithTextCode(textCodeResetCodeExpired)

// ErrResetCooldown enforces the wait between password reset requests.
var ErrResetCooldown = goerrors.New("password reset requested too recently", goerrors.CategoryRateLimit).
	WithTextCode(textCodeResetCooldown)

// ErrInvalidResetCode is returned when the submitted reset code is wrong or
// no reset is pending for the account.
var ErrInvalidResetCode = goerrors.New("password reset code is incorrect", goerrors.CategoryAuth).
	WithTextCode(textCodeInvalidResetCode)

// ErrStoreBusy is returned when a lock acquisition gives up because the
// caller's context expired while waiting.
var ErrStoreBusy = goerrors.New("account store is busy", goerrors.CategoryRateLimit).
	WithTextCode(textCodeStoreBusy)

func storageError(err error, msg string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, msg).
		WithTextCode(textCodeStorageError)
}

// withMeta clones a sentinel before attaching call-specific metadata; the
// shared error value is never mutated. The clone keeps the sentinel in its
// chain so errors.Is still matches.
func withMeta(sentinel *goerrors.Error, meta map[string]any) error {
	clone := sentinel.Clone()
	if clone == nil {
		return sentinel
	}
	clone.Source = sentinel
	return clone.WithMetadata(meta)
}

// IsNotFound reports whether err represents a missing account or index entry.
func IsNotFound(err error) bool {
	return goerrors.IsNotFound(err)
}
