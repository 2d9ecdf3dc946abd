package http

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
	"github.com/rmrg-tec/sigesla-hub/pkg/hubsdk"
)

func TestLoginValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{
			name:     "empty email",
			email:    "",
			password: testPassword,
			want:     "El correo electrónico es requerido",
		},
		{
			name:     "email without at sign",
			email:    "maria.empresa-abc.mx",
			password: testPassword,
			want:     "El correo electrónico no es válido",
		},
		{
			name:     "email without domain",
			email:    "maria@empresa",
			password: testPassword,
			want:     "El correo electrónico no es válido",
		},
		{
			name:     "empty password",
			email:    "maria@empresa-abc.mx",
			password: "",
			want:     "La contraseña es requerida",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, backend, _ := newTestRouter(t)
			b := &browser{t: t, router: r}

			rec := b.postForm("/login", url.Values{
				"email":    {tc.email},
				"password": {tc.password},
			})
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), tc.want)
			require.Zero(t, backend.logins(), "validation failures must not reach the backend")
		})
	}

	t.Run("submitted email is echoed back", func(t *testing.T) {
		t.Parallel()
		r, _, _ := newTestRouter(t)
		b := &browser{t: t, router: r}

		rec := b.postForm("/login", url.Values{
			"email":    {"maria@empresa-abc.mx"},
			"password": {""},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "maria@empresa-abc.mx")
	})
}

func TestLoginFailure(t *testing.T) {
	t.Parallel()

	t.Run("wrong credentials show the backend message", func(t *testing.T) {
		t.Parallel()
		r, backend, _ := newTestRouter(t)
		b := &browser{t: t, router: r}

		rec := b.postForm("/login", url.Values{
			"email":    {"maria@empresa-abc.mx"},
			"password": {"incorrecta"},
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Credenciales inválidas")
		require.Equal(t, 1, backend.logins())

		// The browser stays unauthenticated.
		rec = b.get("/")
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/login", rec.Header().Get("Location"))
	})
}

func TestLoginErrorMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "two factor challenge",
			err:  hubsdk.ErrRequiresTwoFactor,
			want: "Se requiere código 2FA. Funcionalidad en desarrollo.",
		},
		{
			name: "two factor setup required",
			err:  hubsdk.ErrMustSetupTwoFactor,
			want: "Debes configurar 2FA. Funcionalidad en desarrollo.",
		},
		{
			name: "login already running",
			err:  session.ErrLoginInFlight,
			want: "Ya hay un intento de inicio de sesión en curso",
		},
		{
			name: "backend message passes through",
			err:  &hubsdk.AuthError{Message: "Cuenta bloqueada temporalmente"},
			want: "Cuenta bloqueada temporalmente",
		},
		{
			name: "unknown error falls back to invalid credentials",
			err:  errors.New("connection reset"),
			want: "Credenciales inválidas",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, loginErrorMessage(tc.err))
		})
	}
}
