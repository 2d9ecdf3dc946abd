package http

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/view"
	"github.com/rmrg-tec/sigesla-hub/pkg/hubsdk"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

const (
	msgEmailRequired    = "El correo electrónico es requerido"
	msgEmailInvalid     = "El correo electrónico no es válido"
	msgPasswordRequired = "La contraseña es requerida"
	msgInvalidCreds     = "Credenciales inválidas"
	msgRequires2FA      = "Se requiere código 2FA. Funcionalidad en desarrollo."
	msgMustSetup2FA     = "Debes configurar 2FA. Funcionalidad en desarrollo."
	msgLoginInFlight    = "Ya hay un intento de inicio de sesión en curso"
)

// LoginHandler renders the login form and processes credential submissions.
type LoginHandler struct {
	Sessions *session.Manager
	Secure   bool
	Logger   *slog.Logger
}

// HandleForm serves the login page. Authenticated browsers are sent back to
// the launcher instead.
func (h *LoginHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	_, st := resolveSession(w, r, h.Sessions, h.Secure)
	if st.State() == session.StateAuthenticated {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderLogin(w, h.Logger, http.StatusOK, view.LoginData{})
}

// HandleSubmit validates the submitted credentials locally, then attempts
// authentication against the backend. Submissions with a missing or malformed
// email, or a missing password, never reach the network.
func (h *LoginHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	_, st := resolveSession(w, r, h.Sessions, h.Secure)

	if err := r.ParseForm(); err != nil {
		renderLogin(w, h.Logger, http.StatusBadRequest, view.LoginData{
			EmailError: msgEmailRequired,
		})
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	data := view.LoginData{Email: email}
	switch {
	case email == "":
		data.EmailError = msgEmailRequired
	case !emailPattern.MatchString(email):
		data.EmailError = msgEmailInvalid
	}
	if password == "" {
		data.PasswordError = msgPasswordRequired
	}
	if data.EmailError != "" || data.PasswordError != "" {
		renderLogin(w, h.Logger, http.StatusBadRequest, data)
		return
	}

	if err := st.Login(r.Context(), email, password); err != nil {
		data.PasswordError = loginErrorMessage(err)
		renderLogin(w, h.Logger, http.StatusUnauthorized, data)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// loginErrorMessage maps an authentication failure to the message shown at
// the password field.
func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, hubsdk.ErrRequiresTwoFactor):
		return msgRequires2FA
	case errors.Is(err, hubsdk.ErrMustSetupTwoFactor):
		return msgMustSetup2FA
	case errors.Is(err, session.ErrLoginInFlight):
		return msgLoginInFlight
	}

	var authErr *hubsdk.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return msgInvalidCreds
}
