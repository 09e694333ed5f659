package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service wraps authentication business rules.
type Service struct {
	store    *Store
	verifier Verifier
}

// NewService constructs a new Service.
func NewService(store *Store, verifier Verifier) *Service {
	if verifier == nil {
		verifier = PlainVerifier{}
	}
	return &Service{store: store, verifier: verifier}
}

// Authenticate validates email/password credentials and returns the
// sanitized account view on success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Account, error) {
	user, ok := s.store.FindByEmail(email)
	if !ok {
		return Account{}, ErrInvalidCredentials
	}
	if !s.verifier.Verify(user.Password, password) {
		return Account{}, ErrInvalidCredentials
	}
	return Account{ID: user.ID, Email: user.Email}, nil
}

// Register creates a new account unless the email is already taken.
func (s *Service) Register(ctx context.Context, email, password string) (Account, error) {
	encoded, err := s.verifier.Encode(password)
	if err != nil {
		return Account{}, fmt.Errorf("identity: encode credential: %w", err)
	}
	user := User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: encoded,
	}
	if err := s.store.Insert(user); err != nil {
		return Account{}, err
	}
	return Account{ID: user.ID, Email: user.Email}, nil
}

// Seed registers an account and ignores conflicts. Used to load the
// development demo user at startup.
func (s *Service) Seed(ctx context.Context, email, password string) {
	_, _ = s.Register(ctx, email, password)
}
