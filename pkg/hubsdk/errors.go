package hubsdk

import "errors"

// GenericAuthMessage is used when a failed login response carries no message
// of its own, and for transport-level failures during login.
const GenericAuthMessage = "Error de autenticación"

// Login outcomes besides success. Callers switch on these instead of
// string-matching thrown messages:
//
//	user, err := client.Login(ctx, email, password)
//	switch {
//	case err == nil:                                // authenticated
//	case errors.Is(err, hubsdk.ErrRequiresTwoFactor):    // 2FA code pending
//	case errors.Is(err, hubsdk.ErrMustSetupTwoFactor):   // 2FA enrollment pending
//	default:                                        // *AuthError with a message
//	}
var (
	// ErrRequiresTwoFactor means the backend accepted the credentials but a
	// two-factor code is still pending. The caller is NOT logged in.
	ErrRequiresTwoFactor = errors.New("hubsdk: two-factor code required")

	// ErrMustSetupTwoFactor means the backend requires the user to enroll in
	// two-factor authentication first. The caller is NOT logged in.
	ErrMustSetupTwoFactor = errors.New("hubsdk: two-factor setup required")
)

// AuthError is a failed login with a human-readable message, extracted from
// the backend response body when present.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// newAuthError builds an AuthError, falling back to the generic message.
func newAuthError(message string) *AuthError {
	if message == "" {
		message = GenericAuthMessage
	}
	return &AuthError{Message: message}
}
