package houses

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homevault/homevault/internal/platform/httpx"
)

// Handler serves the house reference list.
type Handler struct {
	registry *Registry
}

// NewHandler constructs a Handler instance.
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// MountRoutes registers house routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/houses", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.registry.List())
}
