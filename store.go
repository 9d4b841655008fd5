package finman

import (
	"fmt"
	"sort"
)

// DefaultCurrency is the display currency of a new store document.
// It is a presentation default: the engine itself never formats amounts.
const DefaultCurrency = "INR"

// SchemaVersion is the version written in every persisted document.
// Version 0 documents (no version field) are the legacy dynamic format and
// are migrated on load.
const SchemaVersion = 1

// User is one registered user: a name, an opaque credential, and the ledger
// it exclusively owns.
type User struct {
	name       string
	credential string // salted hash, or plaintext in legacy documents
	ledger     *Ledger
}

// Name returns the username.
func (u *User) Name() string { return u.name }

// Ledger returns the user's ledger. The returned pointer is the live ledger,
// mutations on it are visible on the next save.
func (u *User) Ledger() *Ledger { return u.ledger }

// Store is the in-memory form of the whole persisted document: every
// registered user and their full ledger. There is no incremental persistence,
// the document is always loaded and saved as a whole.
type Store struct {
	currency string
	users    map[string]*User
}

// NewStore creates an empty store. Saved documents always carry the current
// SchemaVersion, so the store itself does not track one.
func NewStore() *Store {
	return &Store{
		currency: DefaultCurrency,
		users:    make(map[string]*User),
	}
}

// Currency returns the display currency code of this document.
func (s *Store) Currency() string { return s.currency }

// User returns the user registered under that name.
func (s *Store) User(name string) (*User, error) {
	u, ok := s.users[name]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", name, ErrNotFound)
	}
	return u, nil
}

// Usernames returns all registered usernames, sorted.
func (s *Store) Usernames() []string {
	names := make([]string, 0, len(s.users))
	for n := range s.users {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
