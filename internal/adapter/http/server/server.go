package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/diacare/identity-service/config"
	"github.com/diacare/identity-service/internal/adapter/http/handler"
	"github.com/diacare/identity-service/internal/adapter/http/middleware"
	"github.com/diacare/identity-service/pkg/logger"
	wrap "github.com/diacare/identity-service/pkg/logger/wrapper"
)

const serviceName = "identity-service"

const serverIPAddress = "%s:%s"

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	rateLimit *middleware.RateLimit
	cors      func(http.Handler) http.Handler

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	auth   *handler.Auth
	health *handler.Health
}

func New(
	cfg config.Config,
	authService AuthService,
	logger logger.Logger,
) (*API, error) {
	if authService == nil {
		return nil, errors.New("auth service is required")
	}

	addr := fmt.Sprintf(serverIPAddress, cfg.Server.Host, cfg.Server.Port)

	routes := &handlers{
		auth:   handler.NewAuth(authService, logger),
		health: handler.NewHealth(serviceName, logger),
	}

	mid := middleware.NewMiddleware(authService, logger)

	api := &API{
		mux:       http.NewServeMux(),
		routes:    routes,
		m:         mid,
		rateLimit: middleware.NewRateLimit(cfg.RateLimit.GeneralRPM, cfg.RateLimit.LoginRPM, cfg.RateLimit.RegisterRPM),
		cors:      middleware.CORS(splitOrigins(cfg.CORS.AllowedOrigins)),
		addr:      addr,
		cfg:       cfg,
		log:       logger,
	}

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	setupRoutes(api.mux, api.routes, api.m)

	return api, nil
}

// AuthService is everything the HTTP layer needs from the domain: the handler
// surface plus token verification for the auth middleware.
type AuthService interface {
	handler.AuthService
	middleware.AuthService
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	var h http.Handler = a.mux
	h = a.m.Auth(h)
	h = a.rateLimit.Handler(h)
	h = a.cors(h)
	h = a.m.Metrics(serviceName)(h)
	h = a.m.Logging(h)
	h = a.m.RequestID(h)
	h = a.m.Recover(h)
	return h
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return nil
	}

	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
