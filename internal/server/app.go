package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/azaliev/showcase/internal/config"
	"github.com/azaliev/showcase/internal/logging"
	"github.com/azaliev/showcase/internal/repositories/repomanager"
	"github.com/azaliev/showcase/internal/services"
	"github.com/azaliev/showcase/internal/storage"
)

// App owns the process lifecycle: database, object storage, services and the
// HTTP server. All dependencies are constructed once here and threaded
// through constructors; there is no package-level mutable state.
type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	router *gin.Engine
}

// NewApp wires the full dependency graph and runs schema migrations.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	svcs := Services{
		Identity: services.NewIdentityService(rm.Identity(db), store, logger.With("component", "identity")),
		Gallery:  services.NewGalleryService(rm.Gallery(db), store, logger.With("component", "gallery")),
		Notices:  services.NewNoticeService(rm.Notices(db), store, logger.With("component", "notices")),
	}

	gin.SetMode(cfg.GinMode)
	router := NewRouter(svcs, logger, Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MaxUploadBytes:     cfg.MaxUploadBytes,
	})

	return &App{config: cfg, logger: logger, db: db, router: router}, nil
}

// Run serves HTTP until the context is canceled or SIGINT/SIGTERM arrives,
// then shuts down gracefully. In-flight requests get ten seconds to finish.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		cancel()
	}()

	srv := &http.Server{Addr: app.config.HTTPAddr, Handler: app.router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	app.logger.Info(ctx, "starting server", "addr", app.config.HTTPAddr, "mode", app.config.GinMode)

	select {
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	return app.db.Close()
}
