package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/soniya-kolvekar/finman/renderer"
)

type setBudgetCmd struct {
	category string
	amount   string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "set the budget allocation for a category" }
func (*setBudgetCmd) Usage() string {
	return `fm set-budget -category <category> -amount <amount>

  Sets the budget for a category, overwriting any previous allocation.
`
}

func (p *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "category", "", "Budget category (e.g. Rent, Utilities).")
	f.StringVar(&p.amount, "amount", "", "Budget amount.")
}

func (p *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	if err := u.Ledger().SetBudget(p.category, amount); err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Budget for %q set to %s.\n", p.category, amount.Format(store.Currency()))
	return subcommands.ExitSuccess
}

type listBudgetCmd struct{}

func (*listBudgetCmd) Name() string     { return "budget" }
func (*listBudgetCmd) Synopsis() string { return "list the remaining budget per category" }
func (*listBudgetCmd) Usage() string {
	return `fm budget

  Lists all budget categories of the logged-in user with their remaining
  allocation.
`
}

func (p *listBudgetCmd) SetFlags(f *flag.FlagSet) {}

func (p *listBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	display(renderer.BudgetMarkdown(u.Ledger(), store.Currency()))
	return subcommands.ExitSuccess
}
