package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/tirtatarum/spk/internal/api"
	v1 "github.com/tirtatarum/spk/internal/api/v1"
	"github.com/tirtatarum/spk/internal/cache"
	"github.com/tirtatarum/spk/internal/config"
	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/postgres"
	"github.com/tirtatarum/spk/internal/repository"
	"github.com/tirtatarum/spk/internal/sentry"
	"github.com/tirtatarum/spk/internal/service"
	"github.com/tirtatarum/spk/internal/typst"
	"github.com/tirtatarum/spk/internal/validator"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewSealRepository,
			repository.NewRevocationRepository,

			// PDF renderer
			typst.NewCompiler,

			// Services
			provideServiceParams,
			service.NewRecordService,
			service.NewSPKService,
			service.NewStatsService,
			service.NewPDFService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app.Run()
}

func provideServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	sealRepo record.SealRepository,
	revocationRepo record.RevocationRepository,
	c cache.Cache,
	compiler typst.Compiler,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:         log,
		Config:         cfg,
		SealRepo:       sealRepo,
		RevocationRepo: revocationRepo,
		Cache:          c,
		Compiler:       compiler,
	}
}

func provideHandlers(
	log *logger.Logger,
	recordService service.RecordService,
	spkService service.SPKService,
	statsService service.StatsService,
	pdfService service.PDFService,
) api.Handlers {
	return api.Handlers{
		Health:     v1.NewHealthHandler(),
		Stats:      v1.NewStatsHandler(statsService, log),
		Penyegelan: v1.NewPenyegelanHandler(recordService, log),
		Pencabutan: v1.NewPencabutanHandler(recordService, log),
		SPK:        v1.NewSPKHandler(spkService, pdfService, log),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return db.Close()
		},
	})
}
