package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/soniya-kolvekar/finman/date"
	"github.com/soniya-kolvekar/finman/renderer"
)

type addIncomeCmd struct {
	amount string
	source string
	date   string
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "record an income and accrue the balance" }
func (*addIncomeCmd) Usage() string {
	return `fm add-income -amount <amount> -source <source> [-d <date>]

  Records an income for the logged-in user and increases the balance.
  The date defaults to today.
`
}

func (p *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.amount, "amount", "", "Income amount.")
	f.StringVar(&p.source, "source", "", "Income source (e.g. Salary, Freelance).")
	f.StringVar(&p.date, "d", "", "Date of the income (YYYY-MM-DD). Defaults to today.")
}

func (p *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	on, err := parseDate(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	if err := u.Ledger().AddIncome(amount, p.source, on); err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Income added successfully! Balance: %s\n", u.Ledger().Balance().Format(store.Currency()))
	return subcommands.ExitSuccess
}

type listIncomeCmd struct{}

func (*listIncomeCmd) Name() string     { return "income" }
func (*listIncomeCmd) Synopsis() string { return "list all income records and their total" }
func (*listIncomeCmd) Usage() string {
	return `fm income

  Lists all income records of the logged-in user with the total income.
`
}

func (p *listIncomeCmd) SetFlags(f *flag.FlagSet) {}

func (p *listIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	display(renderer.IncomeMarkdown(u.Ledger(), store.Currency()))
	return subcommands.ExitSuccess
}

// parseDate parses an optional date flag; empty means today at mutation time.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Date{}, nil
	}
	return date.Parse(s)
}
