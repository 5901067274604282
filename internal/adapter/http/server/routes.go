package server

import (
	"net/http"

	_ "github.com/diacare/identity-service/docs" // registers the swagger spec
	"github.com/diacare/identity-service/internal/adapter/http/middleware"
	"github.com/diacare/identity-service/internal/domain/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	// System Health
	mux.HandleFunc("/health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)
	setupAuthRoutes(mux, routes, m)
}

// setupAuthRoutes setups the identity endpoints
func setupAuthRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	// Public
	mux.HandleFunc("POST /api/v1/auth/login/admin", routes.auth.LoginAdmin)      // Admin login by email
	mux.HandleFunc("POST /api/v1/auth/login", routes.auth.LoginUser)             // Doctor/patient login by phone
	mux.HandleFunc("POST /api/v1/auth/refresh", routes.auth.Refresh)             // Rotate refresh token
	mux.HandleFunc("POST /api/v1/auth/register/patient", routes.auth.RegisterPatient) // Patient self-registration

	// Protected
	mux.Handle("POST /api/v1/auth/register/doctor", m.RequireRoles(routes.auth.CreateDoctor, types.AdminRole)) // Admin creates doctor accounts
	mux.Handle("POST /api/v1/auth/logout", m.RequireRoles(routes.auth.Logout))                                 // Any authenticated role
	mux.Handle("GET /api/v1/auth/me", m.RequireRoles(routes.auth.Me))                                          // Any authenticated role
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName("identity")
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
