package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diacare/identity-service/config"
	httpserver "github.com/diacare/identity-service/internal/adapter/http/server"
	"github.com/diacare/identity-service/internal/adapter/postgres"
	"github.com/diacare/identity-service/internal/service/auth"
	"github.com/diacare/identity-service/pkg/logger"
	postgresclient "github.com/diacare/identity-service/pkg/postgres"
	"github.com/diacare/identity-service/pkg/trm"
)

type App struct {
	postgresDB *postgresclient.PostgreDB
	httpServer *httpserver.API

	cfg config.Config
	log logger.Logger
}

// NewApplication wires the repositories, domain services and the HTTP server.
func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	db, err := postgresclient.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	txManager := trm.New(db.Pool)

	// repositories
	userRepo := postgres.NewUserRepo(db.Pool)
	patientRepo := postgres.NewPatientRepo(db.Pool)
	doctorRepo := postgres.NewDoctorRepo(db.Pool)

	// services
	tokenSvc := auth.NewTokenService(
		cfg.Auth.JWTAccessSecret,
		cfg.Auth.JWTRefreshSecret,
		userRepo,
		txManager,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
		log,
	)
	authSvc := auth.NewAuthService(userRepo, patientRepo, doctorRepo, tokenSvc, txManager, log)

	server, err := httpserver.New(cfg, authSvc, log)
	if err != nil {
		return nil, err
	}

	return &App{
		postgresDB: db,
		httpServer: server,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "identity service closed")
	}()

	errCh := make(chan error, 1)
	a.httpServer.Run(ctx, errCh)

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "service started")
	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error(ctx, "failed to shutdown HTTP server", err)
	}

	a.postgresDB.Pool.Close()
}
