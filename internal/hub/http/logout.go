package http

import (
	"log/slog"
	"net/http"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
)

// LogoutHandler ends the browser session. The backend call is best effort;
// the local session is always discarded.
type LogoutHandler struct {
	Sessions *session.Manager
	Secure   bool
	Logger   *slog.Logger
}

func (h *LogoutHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if sid, st, ok := currentSession(r, h.Sessions); ok {
		st.Logout(r.Context())
		h.Sessions.Drop(sid)
	}
	clearSessionCookie(w, h.Secure)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
