package finman

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists the whole store as a single JSON document:
//
//	{"version":1, "currency":"INR", "users":{"alice":{...}, ...}}
//
// The document is written indented and with deterministic ordering (struct
// fields in declaration order, map keys sorted by encoding/json), so it stays
// human-readable and diff-friendly.
//
// Legacy documents (the version 0 dynamic format) have no version or currency
// field, may lack the budget/goals/investments/loans/debts containers
// entirely, carry plaintext passwords, and have no record ids. All of that is
// migrated on decode: containers default to empty, ids are generated, and
// passwords are upgraded to hashes on the first successful authentication.

// juser is the persisted form of a user and its ledger. The field names
// mirror the legacy documents for backward compatibility.
type juser struct {
	Password    string           `json:"password"`
	Income      []Income         `json:"income"`
	Expenses    []Expense        `json:"expenses"`
	Balance     Money            `json:"balance"`
	Budget      map[string]Money `json:"budget"`
	Goals       map[string]Goal  `json:"goals"`
	Investments []Investment     `json:"investments"`
	Loans       []Loan           `json:"loans"`
	Debts       []Debt           `json:"debts"`
}

// jdocument is the persisted form of the whole store.
type jdocument struct {
	Version  int              `json:"version,omitempty"`
	Currency string           `json:"currency,omitempty"`
	Users    map[string]juser `json:"users"`
}

// DecodeStore reads a store document, applying the legacy migrations.
func DecodeStore(r io.Reader) (*Store, error) {
	var doc jdocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse store document: %w", err)
	}
	if doc.Version > SchemaVersion {
		return nil, fmt.Errorf("store document version %d is newer than supported version %d", doc.Version, SchemaVersion)
	}

	s := NewStore()
	if doc.Currency != "" {
		s.currency = doc.Currency
	}
	for name, ju := range doc.Users {
		ledger := &Ledger{
			balance:     ju.Balance,
			income:      ju.Income,
			expenses:    ju.Expenses,
			budget:      ju.Budget,
			goals:       ju.Goals,
			investments: ju.Investments,
			loans:       ju.Loans,
			debts:       ju.Debts,
		}
		ledger.ensureContainers()
		// Legacy records have no stable id yet.
		for i := range ledger.investments {
			if ledger.investments[i].ID == "" {
				ledger.investments[i].ID = newID()
			}
		}
		for i := range ledger.loans {
			if ledger.loans[i].ID == "" {
				ledger.loans[i].ID = newID()
			}
		}
		for i := range ledger.debts {
			if ledger.debts[i].ID == "" {
				ledger.debts[i].ID = newID()
			}
		}
		s.users[name] = &User{name: name, credential: ju.Password, ledger: ledger}
	}
	return s, nil
}

// EncodeStore writes the full store as one JSON document.
func EncodeStore(w io.Writer, s *Store) error {
	doc := jdocument{
		Version:  SchemaVersion,
		Currency: s.currency,
		Users:    make(map[string]juser, len(s.users)),
	}
	for name, u := range s.users {
		l := u.ledger
		doc.Users[name] = juser{
			Password:    u.credential,
			Income:      notNil(l.income),
			Expenses:    notNil(l.expenses),
			Balance:     l.balance,
			Budget:      l.budget,
			Goals:       l.goals,
			Investments: notNil(l.investments),
			Loans:       notNil(l.loans),
			Debts:       notNil(l.debts),
		}
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("cannot marshal store document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write store document: %w", err)
	}
	return nil
}

// notNil keeps empty collections as [] rather than null in the document.
func notNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
