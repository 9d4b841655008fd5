package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/soniya-kolvekar/finman/renderer"
)

type addInvestmentCmd struct {
	investmentType string
	amount         string
	start          string
}

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "record a new investment" }
func (*addInvestmentCmd) Usage() string {
	return `fm add-investment -type <type> -amount <amount> [-d <start_date>]

  Records an investment. Its current value starts at the invested amount and
  can be updated later with update-investment.
`
}

func (p *addInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.investmentType, "type", "", "Investment type (e.g. Stocks, Mutual Funds).")
	f.StringVar(&p.amount, "amount", "", "Amount invested.")
	f.StringVar(&p.start, "d", "", "Start date (YYYY-MM-DD). Defaults to today.")
}

func (p *addInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	start, err := parseDate(p.start)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	if err := u.Ledger().AddInvestment(p.investmentType, amount, start); err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Investment in %s added successfully!\n", p.investmentType)
	return subcommands.ExitSuccess
}

type updateInvestmentCmd struct {
	number int
	value  string
}

func (*updateInvestmentCmd) Name() string     { return "update-investment" }
func (*updateInvestmentCmd) Synopsis() string { return "update the current value of an investment" }
func (*updateInvestmentCmd) Usage() string {
	return `fm update-investment -n <number> -value <amount>

  Sets the current value of the investment identified by its number in the
  'fm investments' listing (1-based).
`
}

func (p *updateInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.number, "n", 0, "Investment number as shown by 'fm investments'.")
	f.StringVar(&p.value, "value", "", "New current value.")
}

func (p *updateInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	value, err := parseAmount("value", p.value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	if err := u.Ledger().UpdateInvestmentValue(p.number-1, value); err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Investment updated successfully! New current value: %s\n", value.Format(store.Currency()))
	return subcommands.ExitSuccess
}

type listInvestmentsCmd struct{}

func (*listInvestmentsCmd) Name() string     { return "investments" }
func (*listInvestmentsCmd) Synopsis() string { return "list all investments" }
func (*listInvestmentsCmd) Usage() string {
	return `fm investments

  Lists all investments of the logged-in user with their current values.
`
}

func (p *listInvestmentsCmd) SetFlags(f *flag.FlagSet) {}

func (p *listInvestmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	display(renderer.InvestmentsMarkdown(u.Ledger(), store.Currency()))
	return subcommands.ExitSuccess
}
