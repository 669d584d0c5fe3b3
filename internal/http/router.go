package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/handlers"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/metrics"
	httpmw "github.com/imtiazahmadtanvir/quick-hire/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	ProfileHandler     *handlers.ProfileHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	EmployerHandler    *handlers.EmployerHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	Logger             *slog.Logger
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			promhttp.Handler().ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/signup":
			r.deps.AuthHandler.Signup(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/employers":
			r.deps.EmployerHandler.List(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			// Listing is public; a token only matters for ?mine=true.
			r.deps.AuthMiddleware.OptionalAuthenticate(http.HandlerFunc(r.deps.JobHandler.List)).ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
			r.deps.JobHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/jobs") || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/profile") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.List(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		httpmw.RequireRole(user.RoleJobseeker)(http.HandlerFunc(r.deps.ApplicationHandler.Submit)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/"):
		httpmw.RequireRole(user.RoleEmployer)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/profile":
		r.deps.ProfileHandler.Get(w, req)
		return
	case req.Method == http.MethodPut && path == "/profile":
		r.deps.ProfileHandler.Update(w, req)
		return
	}

	http.NotFound(w, req)
}
