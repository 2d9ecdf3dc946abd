// Package hubsdk is the HTTP client for the Sigesla backend API.
//
// It covers the session operations the hub needs: login, session
// verification, authorized-system listing, logout and per-system access
// checks. All requests go through a cookie jar so the backend's session
// cookie is sent and received transparently; the hub never reads or writes
// the cookie itself.
//
// Only Login surfaces errors to the caller (as tagged outcomes, see
// errors.go). Verification, system listing and logout absorb failures and
// degrade to "no session", "no systems" and "logged out" respectively.
package hubsdk
