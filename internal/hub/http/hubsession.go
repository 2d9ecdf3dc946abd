package http

import (
	"net/http"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
	"github.com/rmrg-tec/sigesla-hub/pkg/idx"
)

const sessionCookieName = "hub_sid"

// resolveSession returns the browser session for the request, minting a
// fresh session id (and setting the cookie) when none exists. The returned
// store has already begun verification against the backend.
func resolveSession(w http.ResponseWriter, r *http.Request, sessions *session.Manager, secure bool) (string, *session.Store) {
	if c, err := r.Cookie(sessionCookieName); err == nil {
		if _, perr := idx.Parse(c.Value); perr == nil {
			return c.Value, sessions.GetOrCreate(r.Context(), c.Value)
		}
	}

	sid := sessions.NewSessionID()
	setSessionCookie(w, sid, secure)
	return sid, sessions.GetOrCreate(r.Context(), sid)
}

// currentSession returns the request's browser session without creating one.
func currentSession(r *http.Request, sessions *session.Manager) (string, *session.Store, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", nil, false
	}
	st, ok := sessions.Get(c.Value)
	if !ok {
		return "", nil, false
	}
	return c.Value, st, true
}

func setSessionCookie(w http.ResponseWriter, sid string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
