package app

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/homevault/homevault/internal/catalog"
	"github.com/homevault/homevault/internal/houses"
	"github.com/homevault/homevault/internal/identity"
	"github.com/homevault/homevault/internal/observability"
	"github.com/homevault/homevault/report"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	IdentityHandler *identity.Handler
	HousesHandler   *houses.Handler
	CatalogHandler  *catalog.Handler
	ReportHandler   *report.Handler
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router with HomeVault defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(params.IdentityHandler.MountRoutes)
	r.Group(params.HousesHandler.MountRoutes)
	r.Group(params.CatalogHandler.MountRoutes)
	r.Group(params.ReportHandler.MountRoutes)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	// Uploaded photos are served straight from the flat content directory.
	uploadDir := "uploads"
	if params.Config != nil && params.Config.UploadDir != "" {
		uploadDir = params.Config.UploadDir
	}
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})

	return r
}
