// Package report renders catalog exports: streamed PDF, streamed CSV, and a
// JSON backup snapshot.
package report

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/homevault/homevault/internal/catalog"
	"github.com/homevault/homevault/internal/platform/httpx"
)

// Handler wires the report and backup endpoints.
type Handler struct {
	logger    *slog.Logger
	store     *catalog.Store
	rateLimit func(http.Handler) http.Handler
}

// NewHandler constructs the report handler. Export routes get their own
// tighter rate limit since rendering walks the whole catalog.
func NewHandler(logger *slog.Logger, store *catalog.Store) *Handler {
	limiter := httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return "ip:" + r.RemoteAddr, nil
		}
		return "ip:" + host, nil
	}))
	return &Handler{logger: logger, store: store, rateLimit: limiter}
}

// MountRoutes registers report routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/reports", h.handleAck)
	r.Get("/backup", h.handleBackup)
	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/reports/pdf", h.handleExportPDF)
		r.Get("/reports/csv", h.handleExportCSV)
	})
}

func (h *Handler) handleAck(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, httpx.Envelope{Success: true, Message: "Report generated"})
}

type backupResponse struct {
	Success bool           `json:"success"`
	Backup  []catalog.Item `json:"backup"`
}

func (h *Handler) handleBackup(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, backupResponse{Success: true, Backup: h.store.List("")})
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	items := h.store.List(r.URL.Query().Get("house"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="items-report.pdf"`)
	if err := WritePDF(w, items); err != nil {
		// Headers are already on the wire; the truncated stream is the
		// error signal the consumer sees.
		h.logger.Error("render pdf report", slog.Any("error", err))
	}
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	items := h.store.List(r.URL.Query().Get("house"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="items-report.csv"`)
	if err := WriteCSV(w, items); err != nil {
		h.logger.Error("render csv report", slog.Any("error", err))
	}
}
