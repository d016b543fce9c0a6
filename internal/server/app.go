// Package server initializes and runs the application server. It opens the
// database, runs migrations, wires the services, and starts the HTTP server
// with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/realtyhub/internal/logging"
	"github.com/dmitrijs2005/realtyhub/internal/server/config"
	"github.com/dmitrijs2005/realtyhub/internal/server/httpapi"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/realtyhub/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	media := services.NewMediaService(cfg)

	srv := httpapi.NewServer(cfg, logger, httpapi.Services{
		Auth:           services.NewAuthService(db, rm, cfg),
		Companies:      services.NewCompanyService(db, rm, media, logger),
		Buildings:      services.NewBuildingService(db, rm, media, logger),
		Properties:     services.NewPropertyService(db, rm, media, logger),
		Users:          services.NewUserService(db, rm),
		UserProperties: services.NewUserPropertyService(db, rm),
		Media:          media,
	})

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
