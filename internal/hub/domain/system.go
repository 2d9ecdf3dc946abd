package domain

// AuthorizedSystem is one entry of the launcher: an external business
// application the hub can redirect the user into. Code is the stable
// identifier used for access checks and launch URLs; ID is the backend row
// id. HasAccess gates whether the launcher treats the entry as clickable.
// LastAccess is an optional ISO-8601 timestamp used only for display.
type AuthorizedSystem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	HasAccess   bool   `json:"hasAccess"`
	LastAccess  string `json:"lastAccess,omitempty"`
}

// SessionSnapshot is the payload returned by the verification endpoint,
// used to restore state on reload without re-entering credentials.
type SessionSnapshot struct {
	User    User               `json:"user"`
	Systems []AuthorizedSystem `json:"systems"`
}
