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

type addLoanCmd struct {
	name      string
	principal string
	rate      float64
	years     int
}

func (*addLoanCmd) Name() string     { return "add-loan" }
func (*addLoanCmd) Synopsis() string { return "record a loan and compute its EMI" }
func (*addLoanCmd) Usage() string {
	return `fm add-loan -name <name> -principal <amount> -rate <annual_percent> -years <tenure>

  Records a loan. The fixed monthly installment (EMI) is computed once at
  creation and never changes.
`
}

func (p *addLoanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Loan name (e.g. Home Loan, Personal Loan).")
	f.StringVar(&p.principal, "principal", "", "Loan amount.")
	f.Float64Var(&p.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&p.years, "years", 0, "Loan tenure in years.")
}

func (p *addLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	principal, err := parseAmount("principal", p.principal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	loan, err := u.Ledger().AddLoan(p.name, principal, finman.Percent(p.rate), p.years)
	if err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Loan %q added successfully! EMI: %s\n", loan.Name, loan.EMI.Format(store.Currency()))
	return subcommands.ExitSuccess
}

type payLoanCmd struct {
	number int
	amount string
}

func (*payLoanCmd) Name() string     { return "pay-loan" }
func (*payLoanCmd) Synopsis() string { return "make a payment towards a loan" }
func (*payLoanCmd) Usage() string {
	return `fm pay-loan -n <number> -amount <amount>

  Pays towards the loan identified by its number in the 'fm loans' listing
  (1-based). A payment above the remaining amount is rejected; a payment
  exactly equal to it settles the loan.
`
}

func (p *payLoanCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.number, "n", 0, "Loan number as shown by 'fm loans'.")
	f.StringVar(&p.amount, "amount", "", "Payment amount.")
}

func (p *payLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	loan, err := u.Ledger().PayLoan(p.number-1, amount)
	if err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("%s paid towards the loan. Remaining amount: %s\n",
		amount.Format(store.Currency()), loan.Remaining.Format(store.Currency()))
	return subcommands.ExitSuccess
}

type listLoansCmd struct{}

func (*listLoansCmd) Name() string     { return "loans" }
func (*listLoansCmd) Synopsis() string { return "list all loans" }
func (*listLoansCmd) Usage() string {
	return `fm loans

  Lists all loans of the logged-in user with EMI and remaining amounts.
`
}

func (p *listLoansCmd) SetFlags(f *flag.FlagSet) {}

func (p *listLoansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	display(renderer.LoansMarkdown(u.Ledger(), store.Currency()))
	return subcommands.ExitSuccess
}
