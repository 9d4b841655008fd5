package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/soniya-kolvekar/finman/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show a one-screen overview of the whole ledger" }
func (*summaryCmd) Usage() string {
	return `fm summary

  Shows the balance, income and expense totals, investments, outstanding
  loans and debts, and goal progress of the logged-in user.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	display(renderer.SummaryMarkdown(u.Name(), u.Ledger().Summarize(), store.Currency()))
	return subcommands.ExitSuccess
}
