package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rmrg-tec/sigesla-hub/internal/hub/session"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/store"
	"github.com/rmrg-tec/sigesla-hub/internal/hub/view"
	"github.com/rmrg-tec/sigesla-hub/pkg/httpx"
	"github.com/rmrg-tec/sigesla-hub/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	sessions *session.Manager
	store    store.Store
	secure   bool
}

func NewRouter(
	buildVersion string,
	sessions *session.Manager,
	st store.Store,
	secureCookies bool,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		sessions:     sessions,
		store:        st,
		secure:       secureCookies,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerPages()
	r.registerLaunch()
	r.registerAPI()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPages() {
	loginHandler := &LoginHandler{
		Sessions: r.sessions,
		Secure:   r.secure,
		Logger:   r.logger,
	}

	// GET /login - lenient rate limit (just displays the form)
	r.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(loginHandler.HandleForm),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /login - strict rate limit (authentication attempts)
	// Note: Rate limited by IP + email form field to prevent brute force
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(loginHandler.HandleSubmit),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "email"),
		),
	)

	dashboardHandler := &DashboardHandler{
		Sessions: r.sessions,
		Secure:   r.secure,
		Logger:   r.logger,
	}
	r.Mux.Handle("GET /{$}",
		httpx.Chain(http.HandlerFunc(dashboardHandler.Handle),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	logoutHandler := &LogoutHandler{
		Sessions: r.sessions,
		Secure:   r.secure,
		Logger:   r.logger,
	}
	r.Mux.Handle("POST /logout",
		httpx.Chain(http.HandlerFunc(logoutHandler.Handle),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerLaunch() {
	h := &LaunchHandler{
		Sessions: r.sessions,
		Launches: r.store.LaunchEvents(),
		Secure:   r.secure,
		Logger:   r.logger,
	}
	r.Mux.Handle("GET /launch/{code}",
		httpx.Chain(http.HandlerFunc(h.Handle),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAPI() {
	sessionHandler := &SessionAPIHandler{
		Sessions: r.sessions,
		Secure:   r.secure,
	}
	r.Mux.Handle("GET /api/session",
		httpx.Chain(http.HandlerFunc(sessionHandler.Handle),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	launchesHandler := &LaunchesAPIHandler{
		Sessions: r.sessions,
		Launches: r.store.LaunchEvents(),
		Secure:   r.secure,
		Logger:   r.logger,
	}
	r.Mux.Handle("GET /api/launches",
		httpx.Chain(http.HandlerFunc(launchesHandler.Handle),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// renderLogin writes the login page, logging render failures.
func renderLogin(w http.ResponseWriter, logger *slog.Logger, status int, data view.LoginData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := view.RenderLogin(w, data); err != nil {
		logger.Error("render login page", "error", err)
	}
}

// renderDashboard writes the dashboard page, logging render failures.
func renderDashboard(w http.ResponseWriter, logger *slog.Logger, data view.DashboardData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	httpx.NoCache(w)
	if err := view.RenderDashboard(w, data); err != nil {
		logger.Error("render dashboard page", "error", err)
	}
}
