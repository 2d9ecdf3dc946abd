package hubsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixtures settle on the superset user shape: open role string plus
// tenant_name alongside tenant_id.
const userJSON = `{
	"id": "1",
	"name": "María González",
	"email": "maria.gonzalez@empresa.com",
	"role": "manager",
	"tenant_id": "1",
	"tenant_name": "Empresa ABC S.A. de C.V."
}`

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("success returns user and stores session cookie", func(t *testing.T) {
		var verifyCookie string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/auth/login":
				require.Equal(t, http.MethodPost, r.Method)
				http.SetCookie(w, &http.Cookie{Name: "sigesla_session", Value: "abc123", Path: "/"})
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"user": ` + userJSON + `}`))
			case "/api/hub/auth/verify":
				if c, err := r.Cookie("sigesla_session"); err == nil {
					verifyCookie = c.Value
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"user": ` + userJSON + `, "systems": []}`))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		client := New(srv.URL+"/api", nil)
		user, err := client.Login(context.Background(), "maria.gonzalez@empresa.com", "secret")
		require.NoError(t, err)
		require.Equal(t, "María González", user.Name)
		require.Equal(t, "manager", user.Role)
		require.Equal(t, "1", user.TenantID)
		require.Equal(t, "Empresa ABC S.A. de C.V.", user.TenantName)

		// The jar must resend the backend cookie on subsequent calls.
		require.NotNil(t, client.VerifySession(context.Background()))
		require.Equal(t, "abc123", verifyCookie)
	})

	t.Run("requires2FA is not a logged-in state", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"requires2FA": true, "userId": "1"}`))
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		_, err := client.Login(context.Background(), "a@b.co", "pw")
		require.ErrorIs(t, err, ErrRequiresTwoFactor)
	})

	t.Run("mustSetup2FA is not a logged-in state", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mustSetup2FA": true}`))
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		_, err := client.Login(context.Background(), "a@b.co", "pw")
		require.ErrorIs(t, err, ErrMustSetupTwoFactor)
	})

	t.Run("failure surfaces backend message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "Usuario o contraseña incorrectos"}`))
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		_, err := client.Login(context.Background(), "a@b.co", "wrong")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, "Usuario o contraseña incorrectos", authErr.Message)
	})

	t.Run("failure without message falls back to generic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		_, err := client.Login(context.Background(), "a@b.co", "wrong")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, GenericAuthMessage, authErr.Message)
	})

	t.Run("network failure surfaces generic error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused

		client := New(srv.URL, nil)
		_, err := client.Login(context.Background(), "a@b.co", "pw")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, GenericAuthMessage, authErr.Message)
	})
}

func TestVerifySession(t *testing.T) {
	t.Parallel()

	t.Run("returns snapshot on success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"user": ` + userJSON + `,
				"systems": [{"id": "1", "code": "sigesla", "hasAccess": true}]
			}`))
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		snapshot := client.VerifySession(context.Background())
		require.NotNil(t, snapshot)
		require.Equal(t, "1", snapshot.User.ID)
		require.Len(t, snapshot.Systems, 1)
		require.Equal(t, "sigesla", snapshot.Systems[0].Code)
	})

	t.Run("returns nil on 401", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		require.Nil(t, client.VerifySession(context.Background()))
	})

	t.Run("returns nil on transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := New(srv.URL, nil)
		require.Nil(t, client.VerifySession(context.Background()))
	})
}

func TestAuthorizedSystems(t *testing.T) {
	t.Parallel()

	t.Run("returns systems", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"systems": [
				{"id": "1", "name": "Bitacoras Laborales", "code": "sigesla", "hasAccess": true, "lastAccess": "2025-08-30T10:00:00Z"},
				{"id": "3", "name": "Reportes", "code": "reportes", "hasAccess": false}
			]}`))
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		systems := client.AuthorizedSystems(context.Background())
		require.Len(t, systems, 2)
		require.True(t, systems[0].HasAccess)
		require.False(t, systems[1].HasAccess)
	})

	t.Run("returns empty list on server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		systems := client.AuthorizedSystems(context.Background())
		require.NotNil(t, systems)
		require.Empty(t, systems)
	})

	t.Run("returns empty list on malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		require.Empty(t, client.AuthorizedSystems(context.Background()))
	})
}

func TestHasAccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"systems": [
			{"code": "sigesla", "hasAccess": true},
			{"code": "reportes", "hasAccess": false}
		]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	require.True(t, client.HasAccess(context.Background(), "sigesla"))
	require.False(t, client.HasAccess(context.Background(), "reportes"))
	require.False(t, client.HasAccess(context.Background(), "desconocido"))
}

func TestLogoutIgnoresFailures(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, nil)
	client.Logout(context.Background()) // must not propagate

	var logged int32
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logged++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv2.Close()

	client2 := New(srv2.URL, nil)
	client2.Logout(context.Background())
	require.EqualValues(t, 1, logged)
}
