package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/soniya-kolvekar/finman/renderer"
)

type addDebtCmd struct {
	name   string
	amount string
	due    string
}

func (*addDebtCmd) Name() string     { return "add-debt" }
func (*addDebtCmd) Synopsis() string { return "record a debt with a due date" }
func (*addDebtCmd) Usage() string {
	return `fm add-debt -name <name> -amount <amount> [-due <date>]

  Records a debt (e.g. Credit Card, Personal Borrowing) with nothing paid yet.
`
}

func (p *addDebtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Debt name.")
	f.StringVar(&p.amount, "amount", "", "Debt amount.")
	f.StringVar(&p.due, "due", "", "Due date (YYYY-MM-DD).")
}

func (p *addDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	due, err := parseDate(p.due)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	if err := u.Ledger().AddDebt(p.name, amount, due); err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Debt %q added successfully!\n", p.name)
	return subcommands.ExitSuccess
}

type payDebtCmd struct {
	number int
	amount string
}

func (*payDebtCmd) Name() string     { return "pay-debt" }
func (*payDebtCmd) Synopsis() string { return "make a payment towards a debt" }
func (*payDebtCmd) Usage() string {
	return `fm pay-debt -n <number> -amount <amount>

  Pays towards the debt identified by its number in the 'fm debts' listing
  (1-based). A payment above the remaining amount is rejected.
`
}

func (p *payDebtCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.number, "n", 0, "Debt number as shown by 'fm debts'.")
	f.StringVar(&p.amount, "amount", "", "Payment amount.")
}

func (p *payDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	debt, err := u.Ledger().PayDebt(p.number-1, amount)
	if err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("%s paid towards the debt. Remaining debt: %s\n",
		amount.Format(store.Currency()), debt.Remaining().Format(store.Currency()))
	return subcommands.ExitSuccess
}

type listDebtsCmd struct{}

func (*listDebtsCmd) Name() string     { return "debts" }
func (*listDebtsCmd) Synopsis() string { return "list all debts" }
func (*listDebtsCmd) Usage() string {
	return `fm debts

  Lists all debts of the logged-in user with paid and remaining amounts.
`
}

func (p *listDebtsCmd) SetFlags(f *flag.FlagSet) {}

func (p *listDebtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	display(renderer.DebtsMarkdown(u.Ledger(), store.Currency()))
	return subcommands.ExitSuccess
}
