package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type registerCmd struct{}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new user with an empty ledger" }
func (*registerCmd) Usage() string {
	return `fm register -u <username> -p <password>

  Registers a new user in the store document and creates its empty ledger.
  The password is stored as a salted hash.
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {}

func (p *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadStore()
	if err != nil {
		return fail(err)
	}
	u, err := store.Register(*username, *password)
	if err != nil {
		return fail(err)
	}
	if err := SaveStore(store); err != nil {
		return fail(err)
	}
	fmt.Printf("Registration successful! Welcome, %s.\n", u.Name())
	return subcommands.ExitSuccess
}
