package domain

// User is the identity record returned by the backend on login and session
// verification. Role is an open string (the backend also serves roles beyond
// admin/manager/worker); TenantID/TenantName are the tenant the session is
// scoped to.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   string `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
}

// Tenant is derived from the User at the moment a session is established.
// It is never persisted independently.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TenantOf builds the tenant record for a user. Returns the zero Tenant for
// a zero user.
func TenantOf(u User) Tenant {
	return Tenant{ID: u.TenantID, Name: u.TenantName}
}
