package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
	"github.com/rmrg-tec/sigesla-hub/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore("file::memory:?cache=shared&_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestLaunchEvents(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	repo := st.LaunchEvents()

	now := time.Now().UTC().Truncate(time.Second)
	record := func(sid, code string, at time.Time) domain.LaunchEvent {
		e := domain.LaunchEvent{
			ID:         idx.NewAt(at).String(),
			SessionID:  sid,
			UserID:     "1",
			SystemCode: code,
			OccurredAt: at,
		}
		require.NoError(t, repo.Record(ctx, e))
		return e
	}

	t.Run("lists newest first per session", func(t *testing.T) {
		record("sid-a", "sigesla", now.Add(-2*time.Hour))
		latest := record("sid-a", "demandas", now.Add(-1*time.Hour))
		record("sid-b", "sigesla", now)

		events, err := repo.ListBySession(ctx, "sid-a", 10)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, latest.ID, events[0].ID)
		require.Equal(t, "demandas", events[0].SystemCode)
	})

	t.Run("honors the limit", func(t *testing.T) {
		events, err := repo.ListBySession(ctx, "sid-a", 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
	})

	t.Run("empty session yields empty list", func(t *testing.T) {
		events, err := repo.ListBySession(ctx, "sid-unknown", 10)
		require.NoError(t, err)
		require.Empty(t, events)
	})

	t.Run("delete older than removes stale events", func(t *testing.T) {
		deleted, err := repo.DeleteOlderThan(ctx, now.Add(-90*time.Minute))
		require.NoError(t, err)
		require.EqualValues(t, 1, deleted)

		events, err := repo.ListBySession(ctx, "sid-a", 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
	})
}

func TestPing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}
