package accounts_test

import (
	"context"
	"sync"
	"testing"
	"time"

	accounts "github.com/goliatone/go-accounts"
	"github.com/stretchr/testify/mock"
)

// MockMailer implements accounts.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendActivationEmail(ctx context.Context, email, username, code string) error {
	args := m.Called(ctx, email, username, code)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordResetEmail(ctx context.Context, email, username, code string) error {
	args := m.Called(ctx, email, username, code)
	return args.Error(0)
}

// okMailer accepts everything and remembers the last codes it was handed.
type okMailer struct {
	mu             sync.Mutex
	activationCode string
	resetCode      string
	sent           int
}

func (m *okMailer) SendActivationEmail(_ context.Context, _, _, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activationCode = code
	m.sent++
	return nil
}

func (m *okMailer) SendPasswordResetEmail(_ context.Context, _, _, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetCode = code
	m.sent++
	return nil
}

// fastHasher keeps workflow tests out of bcrypt's cost curve.
type fastHasher struct{}

func (fastHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fastHasher) ComparePasswordAndHash(password, hash string) error {
	if "hashed:"+password != hash {
		return accounts.ErrMismatchedHashAndPassword
	}
	return nil
}

// captureSink records every activity event it sees.
type captureSink struct {
	mu     sync.Mutex
	events []accounts.ActivityEvent
}

func (s *captureSink) Record(_ context.Context, event accounts.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) types() []accounts.ActivityEventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]accounts.ActivityEventType, 0, len(s.events))
	for _, e := range s.events {
		types = append(types, e.EventType)
	}
	return types
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestManager(t *testing.T, opts ...accounts.ManagerOption) (*accounts.Manager, *okMailer, *testClock) {
	t.Helper()

	mailer := &okMailer{}
	clock := newTestClock()

	base := []accounts.ManagerOption{
		accounts.WithMailer(mailer),
		accounts.WithHasher(fastHasher{}),
		accounts.WithClock(clock.Now),
	}

	cfg := accounts.NewSimpleConfig(t.TempDir())
	cfg.LockPollInterval = 5 * time.Millisecond

	return accounts.NewManager(cfg, append(base, opts...)...), mailer, clock
}
