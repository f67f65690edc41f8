package accounts

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	defaultActivationCodeLength = 6
	defaultAccountCodeLength    = 12

	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// generateActivationCode returns a random lowercase alphanumeric token. The
// code is emailed at signup and compared verbatim on activation.
func generateActivationCode(length int) string {
	return strings.ToLower(randomString(length))
}

// generateAccountCode returns the stable opaque identifier issued at account
// creation. It is mixed case and never used for authentication.
func generateAccountCode(length int) string {
	return randomString(length)
}

// generateResetCode returns a password reset token, same alphabet and shape
// as the activation code.
func generateResetCode(length int) string {
	return strings.ToLower(randomString(length))
}

func randomString(length int) string {
	if length <= 0 {
		return ""
	}

	max := big.NewInt(int64(len(alphanumeric)))
	var b strings.Builder
	b.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// there is no useful recovery at this level
			panic("accounts: system random source unavailable: " + err.Error())
		}
		b.WriteByte(alphanumeric[n.Int64()])
	}

	return b.String()
}
