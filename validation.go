package accounts

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	// PasswordMinLength and PasswordMaxLength bound the password policy.
	PasswordMinLength = 6
	PasswordMaxLength = 20

	// UsernameMinLength and UsernameMaxLength bound usernames.
	UsernameMinLength = 3
	UsernameMaxLength = 20
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// IsValidEmail reports whether the value is a well formed email address.
func IsValidEmail(email string) bool {
	err := validation.Validate(email,
		validation.Required,
		validation.Length(3, 100),
		is.Email,
	)
	return err == nil
}

// IsValidUsername reports whether the value is a well formed username:
// letters, digits, and underscores only.
func IsValidUsername(username string) bool {
	err := validation.Validate(username,
		validation.Required,
		validation.Length(UsernameMinLength, UsernameMaxLength),
		validation.Match(usernamePattern),
	)
	return err == nil
}

// IsValidPassword reports whether the value meets the password policy. Only
// the length is bounded; content is the user's business.
func IsValidPassword(password string) bool {
	err := validation.Validate(password,
		validation.Required,
		validation.Length(PasswordMinLength, PasswordMaxLength),
	)
	return err == nil
}
