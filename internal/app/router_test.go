package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homevault/homevault/internal/assets"
	"github.com/homevault/homevault/internal/catalog"
	"github.com/homevault/homevault/internal/houses"
	"github.com/homevault/homevault/internal/identity"
	"github.com/homevault/homevault/internal/observability"
	"github.com/homevault/homevault/report"
)

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	uploadDir := filepath.Join(t.TempDir(), "uploads")
	cfg := &Config{
		AppEnv:     "test",
		AppBaseURL: "http://localhost:8080",
		UploadDir:  uploadDir,
		Houses:     []string{"House 1", "House 2", "House 3"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	identityStore := identity.NewStore()
	identityService := identity.NewService(identityStore, identity.PlainVerifier{})
	registry := houses.NewRegistry(cfg.Houses)
	photoStore := assets.NewStore(uploadDir, cfg.AppBaseURL)
	catalogStore := catalog.NewStore()
	catalogService := catalog.NewService(catalogStore, photoStore, registry, catalog.ServiceConfig{})

	router := NewRouter(RouterParams{
		Logger:          logger,
		Config:          cfg,
		IdentityHandler: identity.NewHandler(logger, identityService),
		HousesHandler:   houses.NewHandler(registry),
		CatalogHandler:  catalog.NewHandler(logger, catalogService, catalogStore, 0),
		ReportHandler:   report.NewHandler(logger, catalogStore),
		Metrics:         observability.NewMetrics(),
	})
	return router, uploadDir
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHousesEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/houses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `["House 1","House 2","House 3"]`, rec.Body.String())
}

func TestUploadsServing(t *testing.T) {
	router, uploadDir := newTestRouter(t)

	require.NoError(t, os.MkdirAll(uploadDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(uploadDir, "123-sofa.jpg"), []byte("jpeg-bytes"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/uploads/123-sofa.jpg", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "jpeg-bytes", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/uploads/missing.jpg", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	// Drive one request through the stack so the counters have samples.
	warm := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(httptest.NewRecorder(), warm)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "homevault_http_requests_total")
}
