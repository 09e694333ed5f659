package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/homevault/homevault/internal/assets"
	"github.com/homevault/homevault/internal/platform/httpx"
)

// Handler wires the item catalog HTTP endpoints.
type Handler struct {
	logger         *slog.Logger
	service        *Service
	store          *Store
	validator      *validator.Validate
	uploadMaxBytes int64
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, store *Store, uploadMaxBytes int64) *Handler {
	if uploadMaxBytes <= 0 {
		uploadMaxBytes = 10 << 20
	}
	return &Handler{
		logger:         logger,
		service:        service,
		store:          store,
		validator:      validator.New(),
		uploadMaxBytes: uploadMaxBytes,
	}
}

// MountRoutes registers catalog routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/items", h.handleList)
	r.Post("/items", h.handleAdd)
	r.Get("/categories", h.handleCategories)
}

type addItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	House       string `json:"house" validate:"required"`
	Photo       string `json:"photo"`
}

type addItemResponse struct {
	Success bool `json:"success"`
	Item    Item `json:"item"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := h.store.List(q.Get("house"))
	items = Search(items, q.Get("q"))
	items = FilterCategory(items, q.Get("category"))
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	items := h.store.List(r.URL.Query().Get("house"))
	httpx.JSON(w, http.StatusOK, Categories(items))
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	// Hard cap on the request size; ParseMultipartForm's argument only
	// bounds the in-memory portion.
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxBytes)
	req, upload, err := h.decodeAdd(r)
	if err != nil {
		httpx.RespondError(w, httpx.ErrMissingField)
		return
	}
	defer upload.close()
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, httpx.ErrMissingField)
		return
	}

	input := AddInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		House:       req.House,
		PhotoURL:    req.Photo,
	}
	item, err := h.service.Add(r.Context(), input, upload.asset())
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			httpx.RespondError(w, httpx.ErrMissingField)
		case errors.Is(err, ErrUnknownHouse):
			httpx.RespondError(w, httpx.ErrUnknownHouse)
		default:
			h.logger.Error("add item", slog.Any("error", err))
			httpx.RespondError(w, httpx.ErrUploadFailed)
		}
		return
	}
	httpx.JSON(w, http.StatusOK, addItemResponse{Success: true, Item: item})
}

// formUpload adapts a parsed multipart file into the asset capability record.
type formUpload struct {
	upload assets.Upload
	closer interface{ Close() error }
}

func (u *formUpload) asset() *assets.Upload {
	if u == nil {
		return nil
	}
	return &u.upload
}

func (u *formUpload) close() {
	if u != nil && u.closer != nil {
		_ = u.closer.Close()
	}
}

// decodeAdd accepts either a multipart form with an optional photo file or a
// plain JSON body with the same fields.
func (h *Handler) decodeAdd(r *http.Request) (addItemRequest, *formUpload, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.uploadMaxBytes); err != nil {
			return addItemRequest{}, nil, err
		}
		req := addItemRequest{
			Name:        r.FormValue("name"),
			Category:    r.FormValue("category"),
			Description: r.FormValue("description"),
			House:       r.FormValue("house"),
			Photo:       r.FormValue("photo"),
		}
		file, header, err := r.FormFile("photo")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				return req, nil, nil
			}
			return addItemRequest{}, nil, err
		}
		return req, &formUpload{
			upload: assets.Upload{Filename: header.Filename, Content: file},
			closer: file,
		}, nil
	}

	var req addItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return addItemRequest{}, nil, err
	}
	return req, nil, nil
}
