package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/scorecards/internal/buildinfo"
	"github.com/abrezinsky/scorecards/internal/catalog"
	"github.com/abrezinsky/scorecards/internal/config"
	"github.com/abrezinsky/scorecards/internal/handlers"
	"github.com/abrezinsky/scorecards/internal/logger"
	"github.com/abrezinsky/scorecards/internal/services"
)

const readHeaderTimeout = 10 * time.Second

// App holds all application dependencies
type App struct {
	log      logger.Logger
	cfg      config.Config
	service  *services.ScorecardService
	handlers *handlers.Handlers
	network  networkProvider
}

// New creates and initializes a new application instance
func New(log logger.Logger, cfg config.Config, cat *catalog.Catalog, templatesFS, staticFS fs.FS) (*App, error) {
	if cat == nil {
		cat = catalog.Default()
	}

	service := services.NewScorecardService(log, cat, services.WithLimits(services.Limits{
		MaxRounds:        cfg.MaxRounds,
		MaxCardsPerRound: cfg.MaxCardsPerRound,
	}))

	h, err := handlers.New(
		service,
		cat,
		templatesFS,
		handlers.NewStaticServer(staticFS),
		log,
		handlers.Settings{
			Version:        buildinfo.Version,
			DefaultQRCodes: cfg.DefaultQRCodes,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		log:      log,
		cfg:      cfg,
		service:  service,
		handlers: h,
		network:  realNetworkProvider{},
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Service returns the scorecard service the handlers use
func (a *App) Service() *services.ScorecardService {
	return a.service
}

// URL returns the address other machines on the LAN can use to reach a
// server listening on port
func (a *App) URL(port int) string {
	host := getPreferredIP(a.network)
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/"
}

// Run listens on the configured address and serves until ctx is done
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.cfg.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts the
// server down within the configured timeout
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	port := a.cfg.Port
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	a.log.Info("Server starting", "url", a.URL(port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
