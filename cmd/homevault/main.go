package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/homevault/homevault/internal/app"
	"github.com/homevault/homevault/internal/assets"
	"github.com/homevault/homevault/internal/catalog"
	"github.com/homevault/homevault/internal/houses"
	"github.com/homevault/homevault/internal/identity"
	"github.com/homevault/homevault/internal/observability"
	"github.com/homevault/homevault/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	identityStore := identity.NewStore()
	identityService := identity.NewService(identityStore, identity.NewVerifier(cfg.AuthHashScheme))
	identityHandler := identity.NewHandler(logger, identityService)

	registry := houses.NewRegistry(cfg.Houses)
	housesHandler := houses.NewHandler(registry)

	photoStore := assets.NewStore(cfg.UploadDir, cfg.AppBaseURL)

	catalogStore := catalog.NewStore()
	catalogService := catalog.NewService(catalogStore, photoStore, registry, catalog.ServiceConfig{
		EnforceHouses: cfg.HousesEnforce,
	})
	catalogHandler := catalog.NewHandler(logger, catalogService, catalogStore, cfg.UploadMaxBytes)

	if !cfg.IsProduction() {
		seedDemoData(ctx, identityService, catalogService)
	}

	reportHandler := report.NewHandler(logger, catalogStore)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		IdentityHandler: identityHandler,
		HousesHandler:   housesHandler,
		CatalogHandler:  catalogHandler,
		ReportHandler:   reportHandler,
		Metrics:         metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("http server", slog.Any("error", err))
		os.Exit(1)
	}
}

// seedDemoData loads the demo account and starter items shipped with the
// reference deployment.
func seedDemoData(ctx context.Context, identityService *identity.Service, catalogService *catalog.Service) {
	identityService.Seed(ctx, "user@example.com", "password")
	for _, input := range []catalog.AddInput{
		{
			Name:        "Sofa",
			Category:    "Furniture",
			Description: "Comfortable sofa",
			House:       "House 1",
			PhotoURL:    "https://via.placeholder.com/100",
		},
		{
			Name:        "TV",
			Category:    "Electronics",
			Description: "42 inch TV",
			House:       "House 1",
			PhotoURL:    "https://via.placeholder.com/100",
		},
	} {
		_, _ = catalogService.Add(ctx, input, nil)
	}
}
