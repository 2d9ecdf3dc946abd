package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatLastAccess(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) string {
		return now.Add(-d).Format(time.RFC3339)
	}

	t.Run("absent timestamp", func(t *testing.T) {
		require.Equal(t, "Nunca", FormatLastAccess("", now))
	})

	t.Run("under one hour", func(t *testing.T) {
		require.Equal(t, "Hace menos de 1 hora", FormatLastAccess(at(30*time.Minute), now))
		require.Equal(t, "Hace menos de 1 hora", FormatLastAccess(at(59*time.Minute), now))
	})

	t.Run("hour buckets below a day", func(t *testing.T) {
		require.Equal(t, "Hace 1 horas", FormatLastAccess(at(1*time.Hour), now))
		require.Equal(t, "Hace 5 horas", FormatLastAccess(at(5*time.Hour), now))
		require.Equal(t, "Hace 23 horas", FormatLastAccess(at(23*time.Hour+30*time.Minute), now))
	})

	t.Run("day buckets beyond a day", func(t *testing.T) {
		require.Equal(t, "Hace 1 días", FormatLastAccess(at(24*time.Hour), now))
		require.Equal(t, "Hace 3 días", FormatLastAccess(at(3*24*time.Hour), now))
	})

	t.Run("unparseable timestamp", func(t *testing.T) {
		require.Equal(t, "Nunca", FormatLastAccess("ayer", now))
	})
}
