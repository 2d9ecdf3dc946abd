package store

import (
	"context"
	"errors"
	"time"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface for the hub's local database.
// Concrete drivers (sqlite) implement it. The hub only persists its launch
// audit log; session state lives in memory and user data is backend-owned.
type Store interface {
	LaunchEvents() LaunchEvents

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type LaunchEvents interface {
	// Record inserts a launch event (id is provided by app via ULID).
	Record(ctx context.Context, e domain.LaunchEvent) error

	// ListBySession returns the most recent events for a hub session,
	// newest first, capped at limit.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.LaunchEvent, error)

	// DeleteOlderThan removes events before the cutoff. Housekeeping keeps
	// the audit log from growing without bound.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
