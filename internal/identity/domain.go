package identity

import "errors"

// User represents a stored user account including its credential.
type User struct {
	ID       string
	Email    string
	Password string
}

// Account is the sanitized view of a user returned to callers.
// The credential never leaves the package.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrInvalidCredentials indicates a login failure. Unknown email and wrong
// password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("identity: invalid credentials")

// ErrEmailTaken indicates a signup conflict on an existing email.
var ErrEmailTaken = errors.New("identity: email already exists")
