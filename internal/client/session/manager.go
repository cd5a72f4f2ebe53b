package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// DefaultCheckInterval is how often the watcher re-checks the token.
const DefaultCheckInterval = 60 * time.Second

// Locations the Navigator may report. Logging out anywhere else moves the
// user to LoginPath.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Storage is the durable mirror of the session.
type Storage interface {
	Save(ctx context.Context, token string, identity models.Identity) error
	Load(ctx context.Context) (string, *models.Identity, error)
	Clear(ctx context.Context) error
}

// Navigator is the UI layer's current location.
type Navigator interface {
	Location() string
	Navigate(path string)
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type Option func(*Manager)

func WithClock(c Clock) Option { return func(m *Manager) { m.clock = c } }

func WithTickerFactory(f TickerFactory) Option { return func(m *Manager) { m.newTicker = f } }

func WithCheckInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.interval = d
		}
	}
}

func WithLogger(l logging.Logger) Option { return func(m *Manager) { m.log = l } }

func WithNavigator(n Navigator) Option { return func(m *Manager) { m.nav = n } }

type Manager struct {
	storage   Storage
	nav       Navigator
	clock     Clock
	newTicker TickerFactory
	interval  time.Duration
	log       logging.Logger

	// opMu serializes state transitions, including their storage I/O.
	opMu sync.Mutex

	mu       sync.Mutex
	cred     *Credential
	identity *models.Identity
	stop     context.CancelFunc
	wg       sync.WaitGroup

	listenersMu  sync.Mutex
	listeners    map[uint64]Listener
	nextListener uint64
}

func NewManager(storage Storage, opts ...Option) *Manager {
	m := &Manager{
		storage:   storage,
		clock:     systemClock{},
		newTicker: newTimeTicker,
		interval:  DefaultCheckInterval,
		log:       logging.Discard(),
		listeners: make(map[uint64]Listener),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// SetNavigator attaches the UI layer after construction.
func (m *Manager) SetNavigator(n Navigator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nav = n
}

// Login installs token and identity. An undecodable or already expired token
// is rejected locally and nothing changes.
func (m *Manager) Login(ctx context.Context, identity models.Identity, token string) error {
	cred, err := ParseToken(token)
	if err != nil {
		m.log.Warn(ctx, "login rejected", "reason", "invalid token", "error", err)
		return err
	}
	if !cred.ValidAt(m.clock.Now()) {
		m.log.Warn(ctx, "login rejected", "reason", "token expired")
		return common.ErrTokenExpired
	}

	m.opMu.Lock()
	if err := m.storage.Save(ctx, token, identity); err != nil {
		m.opMu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}
	m.mu.Lock()
	m.install(cred, identity)
	m.mu.Unlock()
	m.opMu.Unlock()

	m.log.Info(ctx, "logged in", "user", identity.Username, "expires_at", cred.ExpiresAt)
	m.publish(ctx, Event{Kind: EventLogin, Identity: &identity})
	return nil
}

// install must be called with mu held.
func (m *Manager) install(cred Credential, identity models.Identity) {
	m.cred = &cred
	m.identity = &identity
	m.startWatcher()
}

// Logout ends the session. It is safe to call when already logged out.
func (m *Manager) Logout(ctx context.Context) error {
	return m.logout(ctx, ReasonManual)
}

func (m *Manager) logout(ctx context.Context, reason Reason) error {
	m.opMu.Lock()
	m.mu.Lock()
	m.cred = nil
	m.identity = nil
	m.stopWatcher()
	nav := m.nav
	m.mu.Unlock()

	err := m.storage.Clear(ctx)
	m.opMu.Unlock()

	if err != nil {
		m.log.Error(ctx, "failed to clear stored session", "error", err)
		err = fmt.Errorf("clear session: %w", err)
	}
	m.log.Info(ctx, "logged out", "reason", string(reason))

	m.publish(ctx, Event{Kind: EventLogout, Reason: reason})

	if nav != nil {
		if loc := nav.Location(); loc != LoginPath && loc != HomePath {
			nav.Navigate(LoginPath)
		}
	}
	return err
}

// IsAuthenticated evaluates token presence, identity presence and expiry at
// the moment of the call.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validLocked()
}

func (m *Manager) validLocked() bool {
	return m.cred != nil && m.identity != nil && m.cred.ValidAt(m.clock.Now())
}

// Identity returns the signed-in user.
func (m *Manager) Identity() (models.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.validLocked() {
		return models.Identity{}, false
	}
	return *m.identity, true
}

// Token returns the current token for an outbound request. Finding an expired
// one ends the session.
func (m *Manager) Token() (string, error) {
	m.mu.Lock()
	if m.cred == nil || m.identity == nil {
		m.mu.Unlock()
		return "", common.ErrNotAuthenticated
	}
	if m.cred.ValidAt(m.clock.Now()) {
		tok := m.cred.Token
		m.mu.Unlock()
		return tok, nil
	}
	m.mu.Unlock()

	_ = m.logout(context.Background(), ReasonExpired)
	return "", fmt.Errorf("%w: %w", common.ErrNotAuthenticated, common.ErrTokenExpired)
}

// Rejected is called when the server answered 401 to an authenticated call.
func (m *Manager) Rejected(ctx context.Context) {
	_ = m.logout(ctx, ReasonUnauthorized)
}

// CheckExpiration logs out if the installed token has expired and reports
// whether it did.
func (m *Manager) CheckExpiration(ctx context.Context) bool {
	m.mu.Lock()
	expired := m.cred != nil && !m.cred.ValidAt(m.clock.Now())
	m.mu.Unlock()
	if !expired {
		return false
	}
	_ = m.logout(ctx, ReasonExpired)
	return true
}

// Restore loads the stored session at startup. An expired or undecodable
// token is cleared the same way Logout would.
func (m *Manager) Restore(ctx context.Context) error {
	token, identity, err := m.storage.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "stored session unreadable", "error", err)
		if lerr := m.logout(ctx, ReasonInvalid); lerr != nil {
			return errors.Join(fmt.Errorf("load session: %w", err), lerr)
		}
		return fmt.Errorf("load session: %w", err)
	}
	if identity == nil || token == "" {
		return nil
	}

	cred, err := ParseToken(token)
	if err != nil {
		return m.logout(ctx, ReasonInvalid)
	}
	if !cred.ValidAt(m.clock.Now()) {
		return m.logout(ctx, ReasonExpired)
	}

	m.opMu.Lock()
	m.mu.Lock()
	m.install(cred, *identity)
	m.mu.Unlock()
	m.opMu.Unlock()

	m.log.Info(ctx, "session restored", "user", identity.Username, "expires_at", cred.ExpiresAt)
	m.publish(ctx, Event{Kind: EventLogin, Identity: identity})
	return nil
}

// Close stops the watcher and waits for it to exit. The session itself is
// left in place.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.stopWatcher()
	m.mu.Unlock()
	m.wg.Wait()
	return nil
}
