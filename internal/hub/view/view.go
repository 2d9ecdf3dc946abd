// Package view renders the hub's server-side HTML pages from embedded
// templates.
package view

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(
	template.New("").Funcs(template.FuncMap{
		"formatLastAccess": func(lastAccess string) string {
			return FormatLastAccess(lastAccess, time.Now())
		},
	}).ParseFS(templatesFS, "templates/*.html"),
)

// LoginData feeds the login page. Field errors render inline next to the
// corresponding input; a failed authentication renders at the password field.
type LoginData struct {
	Email         string
	EmailError    string
	PasswordError string
}

// DashboardData feeds the launcher page.
type DashboardData struct {
	User    domain.User
	Tenant  domain.Tenant
	Systems []domain.AuthorizedSystem
	Notice  string
}

func RenderLogin(w io.Writer, data LoginData) error {
	return pages.ExecuteTemplate(w, "login.html", data)
}

func RenderDashboard(w io.Writer, data DashboardData) error {
	return pages.ExecuteTemplate(w, "dashboard.html", data)
}
