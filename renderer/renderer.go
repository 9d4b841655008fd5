// Package renderer turns ledger projections into markdown reports. It is a
// pure presentation layer: all figures are computed by the engine, here they
// are only formatted, with the store's display currency applied.
package renderer

import (
	"fmt"

	"github.com/soniya-kolvekar/finman"
)

// view formats amounts of a single report with the document currency.
type view struct {
	currency string
}

func (v view) money(m finman.Money) string { return m.Format(v.currency) }

func (v view) ordinal(i int) string { return fmt.Sprintf("%d", i+1) }
