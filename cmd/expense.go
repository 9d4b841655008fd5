package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/soniya-kolvekar/finman"
	"github.com/soniya-kolvekar/finman/renderer"
)

type addExpenseCmd struct {
	category    string
	amount      string
	description string
	date        string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense and draw it against the budget" }
func (*addExpenseCmd) Usage() string {
	return `fm add-expense -category <category> -amount <amount> [-desc <description>] [-d <date>]

  Records an expense for the logged-in user. When the category has a budget
  with enough allocation the expense is deducted from it; otherwise the
  expense is recorded without touching the budget and a warning is printed.
`
}

func (p *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "category", "", "Expense category (e.g. Rent, Utilities).")
	f.StringVar(&p.amount, "amount", "", "Expense amount.")
	f.StringVar(&p.description, "desc", "", "Optional description.")
	f.StringVar(&p.date, "d", "", "Date of the expense (YYYY-MM-DD). Defaults to today.")
}

func (p *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	status, err := u.Ledger().AddExpense(p.category, amount, p.description, on)
	if err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}

	switch status {
	case finman.BudgetApplied:
		remaining, _ := u.Ledger().Budget(p.category)
		fmt.Printf("Expense added successfully! Remaining budget for %s: %s\n", p.category, remaining.Format(store.Currency()))
	case finman.InsufficientBudget:
		fmt.Println("Warning: insufficient budget for this category! Expense recorded, budget unchanged.")
	case finman.NoBudgetForCategory:
		fmt.Printf("No budget allocated for the category %q. Expense added without budget adjustment.\n", p.category)
	}
	return subcommands.ExitSuccess
}

type listExpensesCmd struct{}

func (*listExpensesCmd) Name() string     { return "expenses" }
func (*listExpensesCmd) Synopsis() string { return "list all expense records and their total" }
func (*listExpensesCmd) Usage() string {
	return `fm expenses

  Lists all expense records of the logged-in user with the total expenses.
`
}

func (p *listExpensesCmd) SetFlags(f *flag.FlagSet) {}

func (p *listExpensesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	display(renderer.ExpensesMarkdown(u.Ledger(), store.Currency()))
	return subcommands.ExitSuccess
}
