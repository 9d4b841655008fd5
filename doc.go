// Package finman implements a single-user personal-finance ledger engine.
// It is designed to be local-first and auditable: every user's financial
// records live in one human-readable JSON document that the engine loads,
// mutates, and persists as a whole.
//
// The core functionalities include:
//   - Ledger Management: Recording income, expenses, per-category budgets,
//     savings goals, investments, loans, and debts, and keeping their
//     cross-field invariants consistent on every mutation (budget deduction
//     on expense, balance accrual on income, loan/debt amortization).
//   - EMI Calculation: A pure, deterministic computation of the fixed
//     monthly installment for a loan, performed exactly once at loan
//     creation.
//   - Derivation Queries: Read-only projections over the ledger (totals,
//     remaining budget, goal progress, outstanding loan and debt amounts).
//   - Data Persistence: Encoding and decoding the full user-record set to
//     and from a schema-versioned, diff-friendly JSON document, including
//     defaulting of containers missing from older documents.
//   - Authentication: A small credential store keeping salted password
//     hashes next to each user's ledger.
//
// This package serves as the foundational logic for the `fm` command-line
// tool; all user-facing formatting and prompting lives outside of it.
package finman
