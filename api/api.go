// Package api provides the HTTP API for the civil defence volunteer
// service: the public registration and location endpoints, and the
// JWT-protected admin surface (volunteer list and filters, bulk status
// changes, CSV export and import, dashboard statistics).
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"

	"github.com/auriaahmad/civil-defence/api/apicommon"
	"github.com/auriaahmad/civil-defence/db"
	"github.com/auriaahmad/civil-defence/validator"
)

const (
	jwtExpiration = 360 * time.Hour  // 15 days
	passwordSalt  = "civildefence25" // salt for password hashing
)

type Config struct {
	Host   string
	Port   int
	Secret string
	DB     db.Store
}

// API type represents the API HTTP server with JWT authentication capabilities.
type API struct {
	db        db.Store
	auth      *jwtauth.JWTAuth
	host      string
	port      int
	router    *chi.Mux
	secret    string
	validator *validator.Validator
}

// New creates a new API HTTP server. It does not start the server. Use Start() for that.
func New(conf *Config) *API {
	if conf == nil {
		return nil
	}
	return &API{
		db:        conf.DB,
		auth:      jwtauth.New("HS256", []byte(conf.Secret), nil),
		host:      conf.Host,
		port:      conf.Port,
		secret:    conf.Secret,
		validator: validator.New(),
	}
}

// Start starts the API HTTP server (non blocking).
func (a *API) Start() {
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", a.host, a.port), a.initRouter()); err != nil {
			zap.S().Fatalf("failed to start the API server: %v", err)
		}
	}()
}

// Router returns the router with all the routes and middleware, for tests
// that serve it with httptest.
func (a *API) Router() http.Handler {
	return a.initRouter()
}

// initRouter creates the router with all the routes and middleware.
func (a *API) initRouter() http.Handler {
	// Create the router with a basic middleware stack
	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}).Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Throttle(100))
	r.Use(middleware.Timeout(45 * time.Second))

	// protected routes
	r.Group(func(r chi.Router) {
		// seek, verify and validate JWT tokens
		r.Use(jwtauth.Verifier(a.auth))
		// handle valid JWT tokens
		r.Use(a.authenticator)
		// refresh the token
		zap.S().Infow("new route", "method", "POST", "path", authRefreshTokenEndpoint)
		r.Post(authRefreshTokenEndpoint, a.refreshTokenHandler)
		// get admin information
		zap.S().Infow("new route", "method", "GET", "path", adminsMeEndpoint)
		r.Get(adminsMeEndpoint, a.adminInfoHandler)
		// filtered volunteer list
		zap.S().Infow("new route", "method", "GET", "path", volunteersEndpoint)
		r.Get(volunteersEndpoint, a.volunteersHandler)
		// single volunteer
		zap.S().Infow("new route", "method", "GET", "path", volunteerEndpoint)
		r.Get(volunteerEndpoint, a.volunteerHandler)
		// bulk status change
		zap.S().Infow("new route", "method", "POST", "path", volunteersStatusEndpoint)
		r.With(a.validator.ValidateMiddleware(apicommon.StatusUpdateRequest{})).
			Post(volunteersStatusEndpoint, a.volunteersStatusHandler)
		// CSV export of the filtered view
		zap.S().Infow("new route", "method", "GET", "path", volunteersExportEndpoint)
		r.Get(volunteersExportEndpoint, a.volunteersExportHandler)
		// CSV bulk import
		zap.S().Infow("new route", "method", "POST", "path", volunteersImportEndpoint)
		r.Post(volunteersImportEndpoint, a.volunteersImportHandler)
		// dashboard statistics
		zap.S().Infow("new route", "method", "GET", "path", dashboardEndpoint)
		r.Get(dashboardEndpoint, a.dashboardHandler)
	})

	// public routes
	r.Group(func(r chi.Router) {
		// health check
		zap.S().Infow("new route", "method", "GET", "path", pingEndpoint)
		r.Get(pingEndpoint, func(w http.ResponseWriter, _ *http.Request) {
			apicommon.HTTPWriteOK(w)
		})
		// login
		zap.S().Infow("new route", "method", "POST", "path", authLoginEndpoint)
		r.Post(authLoginEndpoint, a.authLoginHandler)
		// volunteer registration, validated field by field by the wizard so
		// clients receive the per-field message set rather than a flat 400
		zap.S().Infow("new route", "method", "POST", "path", volunteersEndpoint)
		r.Post(volunteersEndpoint, a.registerVolunteerHandler)
		// location hierarchy
		zap.S().Infow("new route", "method", "GET", "path", locationsProvincesEndpoint)
		r.Get(locationsProvincesEndpoint, a.provincesHandler)
		zap.S().Infow("new route", "method", "GET", "path", locationsDivisionsEndpoint)
		r.Get(locationsDivisionsEndpoint, a.divisionsHandler)
		zap.S().Infow("new route", "method", "GET", "path", locationsDistrictsEndpoint)
		r.Get(locationsDistrictsEndpoint, a.districtsHandler)
		zap.S().Infow("new route", "method", "GET", "path", locationsTehsilsEndpoint)
		r.Get(locationsTehsilsEndpoint, a.tehsilsHandler)
		zap.S().Infow("new route", "method", "GET", "path", locationsUnionCouncilsEndpoint)
		r.Get(locationsUnionCouncilsEndpoint, a.unionCouncilsHandler)
	})

	a.router = r
	return r
}
