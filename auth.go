package finman

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credentials are stored as salted bcrypt hashes. Legacy documents carry
// plaintext passwords; those still authenticate by comparison and are
// upgraded to a hash on the first successful login, so the next save no
// longer contains the plaintext.

// isHashed reports whether the stored credential is a bcrypt hash.
func isHashed(credential string) bool {
	return strings.HasPrefix(credential, "$2a$") ||
		strings.HasPrefix(credential, "$2b$") ||
		strings.HasPrefix(credential, "$2y$")
}

// Register creates a user with an empty ledger.
// The username must be free and the password non-empty.
func (s *Store) Register(username, password string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is missing: %w", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("password is missing: %w", ErrValidation)
	}
	if _, taken := s.users[username]; taken {
		return nil, fmt.Errorf("register %q: %w", username, ErrDuplicateUser)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("cannot hash password: %w", err)
	}
	u := &User{name: username, credential: string(hash), ledger: NewLedger()}
	s.users[username] = u
	return u, nil
}

// Authenticate verifies the password of a registered user and returns it.
// The engine never inspects passwords outside of this function.
func (s *Store) Authenticate(username, password string) (*User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, ErrBadCredentials
	}
	if isHashed(u.credential) {
		if bcrypt.CompareHashAndPassword([]byte(u.credential), []byte(password)) != nil {
			return nil, ErrBadCredentials
		}
		return u, nil
	}
	// Legacy plaintext credential.
	if subtle.ConstantTimeCompare([]byte(u.credential), []byte(password)) != 1 {
		return nil, ErrBadCredentials
	}
	if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
		u.credential = string(hash)
	}
	return u, nil
}
