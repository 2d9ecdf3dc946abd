// Package session holds the per-browser session state of the hub.
//
// A Store is the single authoritative holder of one browser's session: the
// current user, the tenant derived from it, and the authorized-system list.
// All transitions go through the Store; the HTTP layer only reads snapshots
// and triggers Login/Logout.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
)

// State is the lifecycle position of a Store.
type State int

const (
	// StateInitializing means startup verification has not resolved yet.
	StateInitializing State = iota
	// StateAuthenticated means a user is set and the session is live.
	StateAuthenticated
	// StateUnauthenticated means there is no session.
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// ErrLoginInFlight is returned when a session-mutating call is already
// running. Callers retry once the first call resolves; the single-slot guard
// avoids last-writer-wins races on shared state.
var ErrLoginInFlight = errors.New("session: operation already in flight")

// Client is the backend surface the store needs. *hubsdk.Client implements it.
type Client interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	VerifySession(ctx context.Context) *domain.SessionSnapshot
	AuthorizedSystems(ctx context.Context) []domain.AuthorizedSystem
	Logout(ctx context.Context)
}

// Snapshot is the consumer contract exposed to the view layer. User == nil
// implies Tenant == nil and Systems empty.
type Snapshot struct {
	User    *domain.User
	Tenant  *domain.Tenant
	Systems []domain.AuthorizedSystem
	Loading bool
}

// Store mediates all session state transitions for one browser session.
type Store struct {
	client Client
	logger *slog.Logger

	mu       sync.Mutex
	state    State
	user     *domain.User
	tenant   *domain.Tenant
	systems  []domain.AuthorizedSystem
	loading  bool
	inFlight bool
	closed   bool
	lastSeen time.Time
}

// NewStore creates a store in the Initializing state. Call Start to resolve
// it through session verification.
func NewStore(client Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client:   client,
		logger:   logger,
		state:    StateInitializing,
		systems:  []domain.AuthorizedSystem{},
		loading:  true,
		lastSeen: time.Now(),
	}
}

// Start resolves the Initializing state: a verification snapshot moves the
// store to Authenticated, anything else to Unauthenticated with cleared
// state. Verification failure is benign and never surfaces as an error.
func (s *Store) Start(ctx context.Context) {
	s.mu.Lock()
	if s.closed || s.inFlight {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.mu.Unlock()

	snapshot := s.client.VerifySession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if s.closed {
		// Torn down while the request was in flight; never apply late results.
		return
	}

	if snapshot == nil {
		s.clearLocked()
		return
	}

	s.applySessionLocked(snapshot.User, snapshot.Systems)
	s.logger.Debug("session restored from verification", "user_id", snapshot.User.ID)
}

// Login authenticates against the backend and, on success, fetches the
// authorized systems exactly once. On a two-factor challenge or any failure
// the store stays Unauthenticated and the tagged error propagates to the
// caller; the view layer renders the corresponding message.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrLoginInFlight
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrLoginInFlight
	}
	s.inFlight = true
	s.loading = true
	s.mu.Unlock()

	user, err := s.client.Login(ctx, email, password)

	var systems []domain.AuthorizedSystem
	if err == nil {
		systems = s.client.AuthorizedSystems(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.loading = false
	if s.closed {
		return err
	}

	if err != nil {
		// Remain Unauthenticated; only clear if we never held a session.
		if s.user == nil {
			s.clearLocked()
		}
		return err
	}

	s.applySessionLocked(user, systems)
	s.logger.Info("login succeeded", "user_id", user.ID, "tenant_id", user.TenantID)
	return nil
}

// Logout asks the backend to drop the session and unconditionally clears
// local state, whatever the backend said. Calling it twice yields the same
// cleared state; it never propagates an error.
func (s *Store) Logout(ctx context.Context) {
	s.client.Logout(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Close tears the store down. Results of requests still in flight are
// discarded when they resolve.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.clearLocked()
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Loading: s.loading}
	if s.user != nil {
		user := *s.user
		tenant := *s.tenant
		snap.User = &user
		snap.Tenant = &tenant
	}
	snap.Systems = make([]domain.AuthorizedSystem, len(s.systems))
	copy(snap.Systems, s.systems)
	return snap
}

// Touch marks the store as recently used; the manager expires idle stores.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

// LastSeen returns the time of the last Touch (or creation).
func (s *Store) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Store) applySessionLocked(user domain.User, systems []domain.AuthorizedSystem) {
	tenant := domain.TenantOf(user)
	u := user
	s.user = &u
	s.tenant = &tenant
	if systems == nil {
		systems = []domain.AuthorizedSystem{}
	}
	s.systems = systems
	s.state = StateAuthenticated
	s.loading = false
}

func (s *Store) clearLocked() {
	s.user = nil
	s.tenant = nil
	s.systems = []domain.AuthorizedSystem{}
	s.state = StateUnauthenticated
	s.loading = false
}
