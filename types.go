package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-logger/glog"
)

// Logger is the minimal logging surface the library needs.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// LoggerProvider hands out named loggers, e.g. one per component.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// Config holds the store options.
type Config interface {
	GetStorageRoot() string
	GetLockPollInterval() time.Duration
	GetActivationCodeLength() int
	GetAccountCodeLength() int
	GetResetCodeTTL() time.Duration
	GetResetCooldown() time.Duration
}

// PasswordHasher hashes and verifies credentials. The default implementation
// uses bcrypt; swap it out for tests or alternative KDFs.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

// Mailer delivers activation and password reset codes. Implementations own
// transport, templating, and retries; the manager only cares whether the
// message went out.
type Mailer interface {
	SendActivationEmail(ctx context.Context, email, username, code string) error
	SendPasswordResetEmail(ctx context.Context, email, username, code string) error
}

// ResolveLogger picks a logger for the named component: an explicit logger
// wins, then the provider, then the package default.
func ResolveLogger(name string, provider LoggerProvider, logger Logger) (LoggerProvider, Logger) {
	if logger != nil {
		return provider, logger
	}

	if provider != nil {
		if l := provider.GetLogger(name); l != nil {
			return provider, l
		}
	}

	return provider, defLogger{}
}

// GlogProvider adapts a glog logger tree to the LoggerProvider interface.
func GlogProvider(base *glog.BaseLogger) LoggerProvider {
	return glogProvider{base: base}
}

type glogProvider struct {
	base *glog.BaseLogger
}

func (p glogProvider) GetLogger(name string) Logger {
	if p.base == nil {
		return defLogger{}
	}
	return p.base.GetLogger(name)
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] ACCOUNTS "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] ACCOUNTS "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] ACCOUNTS "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] ACCOUNTS "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
