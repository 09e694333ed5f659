package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/homevault/homevault/internal/assets"
)

// PhotoResolver persists uploaded photo content and returns a stable URL.
type PhotoResolver interface {
	Resolve(upload *assets.Upload) (string, error)
}

// HouseChecker answers whether a house name is registered.
type HouseChecker interface {
	Contains(name string) bool
}

// Service coordinates item creation. Reads go straight to the Store.
type Service struct {
	store   *Store
	photos  PhotoResolver
	houses  HouseChecker
	enforce bool
}

// ServiceConfig groups optional settings.
type ServiceConfig struct {
	// EnforceHouses rejects items tagged with a house missing from the
	// registry. The reference behavior is permissive, so this defaults off.
	EnforceHouses bool
}

// NewService builds a Service.
func NewService(store *Store, photos PhotoResolver, houses HouseChecker, cfg ServiceConfig) *Service {
	return &Service{store: store, photos: photos, houses: houses, enforce: cfg.EnforceHouses}
}

// Add validates the input, resolves the photo reference, and appends the new
// item. The item is either fully constructed and appended, or not appended
// at all; nothing mutates on a validation or upload failure.
func (s *Service) Add(ctx context.Context, input AddInput, upload *assets.Upload) (Item, error) {
	if input.Name == "" || input.Category == "" || input.Description == "" || input.House == "" {
		return Item{}, ErrMissingField
	}
	if s.enforce && s.houses != nil && !s.houses.Contains(input.House) {
		return Item{}, ErrUnknownHouse
	}

	// Photo persistence is the only I/O-bound step; it runs before the
	// store lock is taken.
	photo := input.PhotoURL
	if upload != nil || photo == "" {
		resolved, err := s.photos.Resolve(upload)
		if err != nil {
			return Item{}, err
		}
		photo = resolved
	}

	item := Item{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Photo:       photo,
		House:       input.House,
	}
	s.store.Append(item)
	return item, nil
}
