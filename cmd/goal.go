package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/soniya-kolvekar/finman/renderer"
)

type setGoalCmd struct {
	name   string
	target string
}

func (*setGoalCmd) Name() string     { return "set-goal" }
func (*setGoalCmd) Synopsis() string { return "set a savings goal target" }
func (*setGoalCmd) Usage() string {
	return `fm set-goal -name <name> -target <amount>

  Sets a savings goal. An existing goal keeps its accumulated savings, only
  the target is overwritten.
`
}

func (p *setGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Goal name (e.g. Vacation, Emergency Fund).")
	f.StringVar(&p.target, "target", "", "Target amount for the goal.")
}

func (p *setGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := parseAmount("target", p.target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	if err := u.Ledger().SetGoal(p.name, target); err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Goal %q set with a target amount of %s.\n", p.name, target.Format(store.Currency()))
	return subcommands.ExitSuccess
}

type addSavingsCmd struct {
	name   string
	amount string
}

func (*addSavingsCmd) Name() string     { return "add-savings" }
func (*addSavingsCmd) Synopsis() string { return "add savings towards a goal" }
func (*addSavingsCmd) Usage() string {
	return `fm add-savings -name <name> -amount <amount>

  Adds savings towards an existing goal. Saving past the target is allowed.
`
}

func (p *addSavingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Goal name.")
	f.StringVar(&p.amount, "amount", "", "Amount to add towards the goal.")
}

func (p *addSavingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("amount", p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	if err := u.Ledger().AddSavings(p.name, amount); err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	progress, err := u.Ledger().GoalProgress(p.name)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%s added to your goal %q. Current savings: %s\n",
		amount.Format(store.Currency()), p.name, progress.Saved.Format(store.Currency()))
	return subcommands.ExitSuccess
}

type listGoalsCmd struct{}

func (*listGoalsCmd) Name() string     { return "goals" }
func (*listGoalsCmd) Synopsis() string { return "list all savings goals and their progress" }
func (*listGoalsCmd) Usage() string {
	return `fm goals

  Lists all savings goals of the logged-in user with target, saved, and
  remaining amounts.
`
}

func (p *listGoalsCmd) SetFlags(f *flag.FlagSet) {}

func (p *listGoalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, u, err := session()
	if err != nil {
		return fail(err)
	}
	display(renderer.GoalsMarkdown(u.Ledger(), store.Currency()))
	return subcommands.ExitSuccess
}
