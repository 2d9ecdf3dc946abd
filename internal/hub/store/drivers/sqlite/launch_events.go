package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
)

type launchEventsRepo struct {
	db *sql.DB
}

func (r *launchEventsRepo) Record(ctx context.Context, e domain.LaunchEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO launch_events (id, session_id, user_id, system_code, occurred_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, e.UserID, e.SystemCode, e.OccurredAt.UTC(),
	)
	return err
}

func (r *launchEventsRepo) ListBySession(
	ctx context.Context,
	sessionID string,
	limit int,
) ([]domain.LaunchEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, user_id, system_code, occurred_at
		FROM launch_events
		WHERE session_id = ?
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	defer rows.Close()

	events := []domain.LaunchEvent{}
	for rows.Next() {
		var e domain.LaunchEvent
		if err := rows.Scan(&e.ID, &e.SessionID, &e.UserID, &e.SystemCode, &e.OccurredAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *launchEventsRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM launch_events WHERE occurred_at < ?`,
		cutoff.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
