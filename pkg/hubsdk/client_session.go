package hubsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User         domain.User `json:"user"`
	Message      string      `json:"message,omitempty"`
	Requires2FA  bool        `json:"requires2FA,omitempty"`
	MustSetup2FA bool        `json:"mustSetup2FA,omitempty"`
}

// errorResponse is the shape of a non-2xx login body. Message is optional.
type errorResponse struct {
	Message string `json:"message"`
}

// Login sends credentials to the authentication endpoint. On success the
// backend sets its session cookie in the jar and the user record is
// returned. Non-success outcomes are ErrRequiresTwoFactor,
// ErrMustSetupTwoFactor or an *AuthError carrying the backend's message.
func (c *Client) Login(ctx context.Context, email, password string) (domain.User, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return domain.User{}, newAuthError("")
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		c.log().Warn("login request failed", "err", err)
		return domain.User{}, newAuthError("")
	}

	raw, err := readBody(resp)
	if err != nil {
		c.log().Warn("login response unreadable", "err", err)
		return domain.User{}, newAuthError("")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		_ = json.Unmarshal(raw, &errResp)
		return domain.User{}, newAuthError(errResp.Message)
	}

	var loginResp loginResponse
	if err := json.Unmarshal(raw, &loginResp); err != nil {
		c.log().Warn("login response malformed", "err", err)
		return domain.User{}, newAuthError("")
	}

	// A 2FA challenge is not a logged-in state.
	if loginResp.Requires2FA {
		return domain.User{}, ErrRequiresTwoFactor
	}
	if loginResp.MustSetup2FA {
		return domain.User{}, ErrMustSetupTwoFactor
	}

	return loginResp.User, nil
}

// VerifySession checks whether the jar holds a valid backend session.
// Returns nil on any non-success status or transport failure; an absent
// session is expected, not exceptional.
func (c *Client) VerifySession(ctx context.Context) *domain.SessionSnapshot {
	resp, err := c.doRequest(ctx, http.MethodGet, "/hub/auth/verify", nil, nil)
	if err != nil {
		c.log().Debug("session verification failed", "err", err)
		return nil
	}

	raw, err := readBody(resp)
	if err != nil {
		c.log().Debug("session verification response unreadable", "err", err)
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	var snapshot domain.SessionSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		c.log().Warn("session verification response malformed", "err", err)
		return nil
	}

	return &snapshot
}

// Logout asks the backend to drop the session. Errors are logged and
// otherwise ignored; callers clear their local state unconditionally
// afterwards, so logout always locally succeeds once requested.
func (c *Client) Logout(ctx context.Context) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/hub/auth/logout", nil, nil)
	if err != nil {
		c.log().Warn("logout request failed", "err", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log().Warn("logout returned non-success status", "status", resp.StatusCode)
	}
}
