package http

import (
	"log/slog"
	"net/http"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/view"
)

// DashboardHandler serves the launcher page listing the systems the signed-in
// user may enter.
type DashboardHandler struct {
	Sessions *session.Manager
	Secure   bool
	Logger   *slog.Logger
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	_, st := resolveSession(w, r, h.Sessions, h.Secure)

	snap := st.Snapshot()
	if snap.User == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := view.DashboardData{
		User:    *snap.User,
		Tenant:  *snap.Tenant,
		Systems: snap.Systems,
	}
	if r.URL.Query().Get("denied") != "" {
		data.Notice = "No tienes acceso al sistema solicitado"
	}
	renderDashboard(w, h.Logger, data)
}
