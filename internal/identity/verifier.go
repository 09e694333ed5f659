package identity

import "golang.org/x/crypto/bcrypt"

// Verifier encodes and checks credentials. Hashing policy lives here, outside
// the store and service, so the reference-compatible plaintext behavior and a
// hardened deployment can coexist.
type Verifier interface {
	Encode(password string) (string, error)
	Verify(encoded, password string) bool
}

// PlainVerifier compares credentials with exact string equality. It matches
// the reference behavior and must not be used outside compatibility testing.
type PlainVerifier struct{}

// Encode returns the password unchanged.
func (PlainVerifier) Encode(password string) (string, error) { return password, nil }

// Verify reports whether both strings are exactly equal, case-sensitive.
func (PlainVerifier) Verify(encoded, password string) bool { return encoded == password }

// BcryptVerifier stores bcrypt digests instead of raw credentials.
type BcryptVerifier struct {
	Cost int
}

// Encode hashes the password with bcrypt.
func (v BcryptVerifier) Encode(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compares the stored digest against the candidate password.
func (v BcryptVerifier) Verify(encoded, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}

// NewVerifier selects a verifier by scheme name. Unknown schemes fall back to
// plain so a misconfigured process still boots with reference semantics.
func NewVerifier(scheme string) Verifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
