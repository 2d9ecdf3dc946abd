package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/store"
	"github.com/rmrg-tec/sigesla-hub/pkg/httpx"
)

type sessionResponse struct {
	User      *domain.User              `json:"user"`
	Tenant    *domain.Tenant            `json:"tenant"`
	Systems   []domain.AuthorizedSystem `json:"systems"`
	IsLoading bool                      `json:"isLoading"`
}

// SessionAPIHandler exposes the browser's session state as JSON for clients
// that poll instead of rendering server-side.
type SessionAPIHandler struct {
	Sessions *session.Manager
	Secure   bool
}

func (h *SessionAPIHandler) Handle(w http.ResponseWriter, r *http.Request) {
	_, st := resolveSession(w, r, h.Sessions, h.Secure)

	snap := st.Snapshot()
	resp := sessionResponse{
		User:      snap.User,
		Tenant:    snap.Tenant,
		Systems:   snap.Systems,
		IsLoading: snap.Loading,
	}
	if resp.Systems == nil {
		resp.Systems = []domain.AuthorizedSystem{}
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type launchRecord struct {
	ID         string    `json:"id"`
	SystemCode string    `json:"systemCode"`
	OccurredAt time.Time `json:"occurredAt"`
}

type launchesResponse struct {
	Launches []launchRecord `json:"launches"`
}

// LaunchesAPIHandler lists the current session's launch history from the
// local audit log.
type LaunchesAPIHandler struct {
	Sessions *session.Manager
	Launches store.LaunchEvents
	Secure   bool
	Logger   *slog.Logger
}

func (h *LaunchesAPIHandler) Handle(w http.ResponseWriter, r *http.Request) {
	sid, st, ok := currentSession(r, h.Sessions)
	if !ok || st.Snapshot().User == nil {
		httpx.WriteJSON(w, http.StatusUnauthorized, map[string]string{
			"message": "Sesión no autenticada",
		})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	events, err := h.Launches.ListBySession(r.Context(), sid, limit)
	if err != nil {
		h.Logger.Error("list launch events", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "No se pudo obtener el historial",
		})
		return
	}

	resp := launchesResponse{Launches: make([]launchRecord, 0, len(events))}
	for _, e := range events {
		resp.Launches = append(resp.Launches, launchRecord{
			ID:         e.ID,
			SystemCode: e.SystemCode,
			OccurredAt: e.OccurredAt,
		})
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}
