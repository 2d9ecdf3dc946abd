package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rmrg-tec/sigesla-hub/pkg/idx"
)

// ClientFactory builds a fresh backend client. Every hub session gets its own
// client so backend session cookies never leak between browsers.
type ClientFactory func() Client

// Manager owns the session stores, keyed by the hub session ID carried in the
// browser cookie. Idle stores are swept by the housekeeping worker.
type Manager struct {
	newClient ClientFactory
	logger    *slog.Logger
	ttl       time.Duration

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager creates a manager. If ttl is zero or negative it defaults to 12
// hours.
func NewManager(factory ClientFactory, logger *slog.Logger, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		newClient: factory,
		logger:    logger,
		ttl:       ttl,
		stores:    make(map[string]*Store),
	}
}

// NewSessionID mints a hub session ID.
func (m *Manager) NewSessionID() string {
	return idx.New().String()
}

// Get returns the store for a session ID if one exists.
func (m *Manager) Get(sid string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.stores[sid]
	return st, ok
}

// GetOrCreate returns the store for a session ID, creating and starting it
// when the browser is new. Start runs the backend verification before the
// store is handed out, so callers always see a resolved state.
func (m *Manager) GetOrCreate(ctx context.Context, sid string) *Store {
	m.mu.Lock()
	if st, ok := m.stores[sid]; ok {
		m.mu.Unlock()
		st.Touch()
		return st
	}

	st := NewStore(m.newClient(), m.logger.With("hub_sid", sid))
	m.stores[sid] = st
	m.mu.Unlock()

	st.Start(ctx)
	return st
}

// Drop closes and removes the store for a session ID.
func (m *Manager) Drop(sid string) {
	m.mu.Lock()
	st, ok := m.stores[sid]
	delete(m.stores, sid)
	m.mu.Unlock()

	if ok {
		st.Close()
	}
}

// Sweep closes stores idle for longer than the TTL. Returns the number of
// stores removed.
func (m *Manager) Sweep() int {
	cutoff := time.Now().Add(-m.ttl)

	m.mu.Lock()
	var expired []*Store
	for sid, st := range m.stores {
		if st.LastSeen().Before(cutoff) {
			expired = append(expired, st)
			delete(m.stores, sid)
		}
	}
	m.mu.Unlock()

	for _, st := range expired {
		st.Close()
	}
	if len(expired) > 0 {
		m.logger.Info("expired idle hub sessions", "count", len(expired))
	}
	return len(expired)
}

// Len reports how many stores are live.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}

// CloseAll tears down every store. Used on shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	stores := make([]*Store, 0, len(m.stores))
	for _, st := range m.stores {
		stores = append(stores, st)
	}
	m.stores = make(map[string]*Store)
	m.mu.Unlock()

	for _, st := range stores {
		st.Close()
	}
}
