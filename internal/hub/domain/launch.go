package domain

import "time"

// LaunchEvent is a local audit record written every time the hub redirects a
// browser into a system. The backend owns the authoritative lastAccess; this
// log only tracks what went through this hub instance.
type LaunchEvent struct {
	ID         string    // ULID
	SessionID  string    // hub session the launch belongs to
	UserID     string    // backend user id at launch time
	SystemCode string
	OccurredAt time.Time
}
