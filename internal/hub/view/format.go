package view

import (
	"fmt"
	"time"
)

// FormatLastAccess renders a system's last access timestamp as a relative
// Spanish phrase: "Nunca" when absent, then hour buckets below one day and
// day buckets beyond. Unparseable timestamps render as "Nunca" rather than
// breaking the card.
func FormatLastAccess(lastAccess string, now time.Time) string {
	if lastAccess == "" {
		return "Nunca"
	}

	accessed, err := time.Parse(time.RFC3339, lastAccess)
	if err != nil {
		return "Nunca"
	}

	hours := int(now.Sub(accessed).Hours())
	switch {
	case hours < 1:
		return "Hace menos de 1 hora"
	case hours < 24:
		return fmt.Sprintf("Hace %d horas", hours)
	default:
		return fmt.Sprintf("Hace %d días", hours/24)
	}
}
