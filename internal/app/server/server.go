// Package server assembles the dashboard API: storage, migrations, the
// Redis cache, the business services and the HTTP server.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/Aaryashkc/Client-domain-management/internal/cache"
	"github.com/Aaryashkc/Client-domain-management/internal/config"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/jwt"
	"github.com/Aaryashkc/Client-domain-management/internal/lib/smtp"
	"github.com/Aaryashkc/Client-domain-management/internal/migrations"
	authservice "github.com/Aaryashkc/Client-domain-management/internal/services/auth"
	clientservice "github.com/Aaryashkc/Client-domain-management/internal/services/client"
	emailservice "github.com/Aaryashkc/Client-domain-management/internal/services/email"
	providerservice "github.com/Aaryashkc/Client-domain-management/internal/services/provider"
	senderservice "github.com/Aaryashkc/Client-domain-management/internal/services/sender"
	serviceservice "github.com/Aaryashkc/Client-domain-management/internal/services/service"
	"github.com/Aaryashkc/Client-domain-management/internal/storage/repository"
)

// App is the assembled API server.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New connects storage, runs migrations, initializes the cache and wires
// every service and route.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	transport := smtp.NewTransport(cfg.SMTP, logger)

	authService := authservice.NewAuthService(db, jwtMaker)
	clientService := clientservice.NewClientService(db, logger)
	providerService := providerservice.NewProviderService(db, logger)
	emailService := emailservice.NewEmailService(db, logger)
	serviceService := serviceservice.NewServiceService(db, cacheRedis, logger)
	senderService := senderservice.NewSenderService(db, transport, cfg.Notify, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, clientService, providerService, serviceService, emailService, senderService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
