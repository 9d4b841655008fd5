package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/soniya-kolvekar/finman"
)

// SummaryMarkdown renders the one-screen ledger overview.
func SummaryMarkdown(username string, s finman.Summary, currency string) string {
	v := view{currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Finance Summary for %s", username))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{md.Bold("Balance"), v.money(s.Balance)},
			{"Total Income", v.money(s.TotalIncome)},
			{"Total Expenses", v.money(s.TotalExpenses)},
			{"Invested Amount", v.money(s.InvestedAmount)},
			{"Investments Value", v.money(s.InvestmentsValue)},
			{"Outstanding Loans", v.money(s.OutstandingLoans)},
			{"Outstanding Debts", v.money(s.OutstandingDebts)},
		},
	})

	if len(s.Goals) > 0 {
		doc.H2("Goals")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Goal", "Target", "Saved", "Remaining"},
		}
		for _, g := range s.Goals {
			table.Rows = append(table.Rows, []string{g.Name, v.money(g.Target), v.money(g.Saved), v.money(g.Remaining)})
		}
		doc.Table(table)
	}
	return doc.String()
}
