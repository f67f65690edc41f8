package accounts

import (
	"context"
	"time"

	"github.com/goliatone/go-print"
	"github.com/google/uuid"
)

// Manager owns the record store and email index and is the only component
// allowed to mutate them. Every mutating workflow acquires the store lock on
// entry and releases it on every exit path; read accessors go lock free and
// rely on atomic file writes.
type Manager struct {
	config   Config
	store    *RecordStore
	index    *EmailIndex
	lock     *StoreLock
	hasher   PasswordHasher
	mailer   Mailer
	sink     ActivitySink
	logger   Logger
	provider LoggerProvider
	now      func() time.Time
	debug    bool
}

// ManagerOption customizes manager construction.
type ManagerOption func(*Manager)

// WithLogger overrides the manager logger.
func WithLogger(l Logger) ManagerOption {
	return func(m *Manager) {
		m.provider, m.logger = ResolveLogger("accounts.manager", m.provider, l)
	}
}

// WithLoggerProvider overrides the logger provider.
func WithLoggerProvider(provider LoggerProvider) ManagerOption {
	return func(m *Manager) {
		m.provider, m.logger = ResolveLogger("accounts.manager", provider, nil)
	}
}

// WithMailer sets the delivery collaborator used for activation and reset
// codes.
func WithMailer(mailer Mailer) ManagerOption {
	return func(m *Manager) {
		if mailer != nil {
			m.mailer = mailer
		}
	}
}

// WithHasher swaps the password hashing collaborator.
func WithHasher(hasher PasswordHasher) ManagerOption {
	return func(m *Manager) {
		if hasher != nil {
			m.hasher = hasher
		}
	}
}

// WithActivitySink sets the audit sink receiving lifecycle events.
func WithActivitySink(sink ActivitySink) ManagerOption {
	return func(m *Manager) {
		m.sink = normalizeActivitySink(sink)
	}
}

// WithClock injects a custom clock (useful for tests).
func WithClock(clock func() time.Time) ManagerOption {
	return func(m *Manager) {
		if clock != nil {
			m.now = clock
		}
	}
}

// WithDebug enables pretty-printed record dumps at debug level.
func WithDebug(debug bool) ManagerOption {
	return func(m *Manager) {
		m.debug = debug
	}
}

// NewManager builds a lifecycle manager rooted at the config's storage root.
func NewManager(config Config, opts ...ManagerOption) *Manager {
	if config == nil {
		config = NewSimpleConfig(".")
	}

	root := config.GetStorageRoot()
	provider, logger := ResolveLogger("accounts.manager", nil, nil)

	m := &Manager{
		config:   config,
		store:    NewRecordStore(root),
		index:    NewEmailIndex(root),
		lock:     NewStoreLock(config.GetLockPollInterval()),
		hasher:   bcryptHasher{},
		mailer:   logMailer{},
		sink:     noopActivitySink{},
		logger:   logger,
		provider: provider,
		now:      time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	return m
}

// Store exposes the record store for read-only collaborators.
func (m *Manager) Store() *RecordStore { return m.store }

// Index exposes the email index for read-only collaborators.
func (m *Manager) Index() *EmailIndex { return m.index }

// Lock exposes the store lock for diagnostics.
func (m *Manager) Lock() *StoreLock { return m.lock }

func (m *Manager) recordActivity(ctx context.Context, event ActivityEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = m.now()
	}

	sink := normalizeActivitySink(m.sink)
	if err := sink.Record(ctx, event); err != nil {
		m.logger.Warn("activity sink error: %v", err)
	}
}

func (m *Manager) debugRecord(msg string, record *UserRecord) {
	if !m.debug {
		return
	}
	m.logger.Debug(msg+": %s", print.MaybePrettyJSON(record))
}
