package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/store"
	"github.com/rmrg-tec/sigesla-hub/pkg/idx"
)

// LaunchHandler redirects the browser into an authorized system, recording
// the launch in the local audit log.
type LaunchHandler struct {
	Sessions *session.Manager
	Launches store.LaunchEvents
	Secure   bool
	Logger   *slog.Logger
}

func (h *LaunchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	sid, st := resolveSession(w, r, h.Sessions, h.Secure)

	snap := st.Snapshot()
	if snap.User == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	code := r.PathValue("code")
	sys, ok := findSystem(snap.Systems, code)
	if !ok || !sys.HasAccess {
		http.Redirect(w, r, "/?denied="+url.QueryEscape(code), http.StatusSeeOther)
		return
	}

	// An audit failure must not block the user from entering the system.
	event := domain.LaunchEvent{
		ID:         idx.New().String(),
		SessionID:  sid,
		UserID:     snap.User.ID,
		SystemCode: sys.Code,
		OccurredAt: time.Now().UTC(),
	}
	if err := h.Launches.Record(r.Context(), event); err != nil {
		h.Logger.Error("record launch event", "system", sys.Code, "error", err)
	}

	http.Redirect(w, r, sys.URL, http.StatusFound)
}

func findSystem(systems []domain.AuthorizedSystem, code string) (domain.AuthorizedSystem, bool) {
	for _, s := range systems {
		if s.Code == code {
			return s, true
		}
	}
	return domain.AuthorizedSystem{}, false
}
