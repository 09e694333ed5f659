package identity

import "sync"

// Store keeps user accounts in memory for the lifetime of the process.
// All collections reset on restart; there is no durable persistence.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]int
	users   []User
}

// NewStore builds an empty Store.
func NewStore() *Store {
	return &Store{byEmail: make(map[string]int)}
}

// FindByEmail returns the user with the exact email, if present.
func (s *Store) FindByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byEmail[email]
	if !ok {
		return User{}, false
	}
	return s.users[idx], true
}

// Insert appends a user unless the email is already registered.
func (s *Store) Insert(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[user.Email]; exists {
		return ErrEmailTaken
	}
	s.byEmail[user.Email] = len(s.users)
	s.users = append(s.users, user)
	return nil
}

// Len reports the number of stored users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
