// Package cmd implements the CLI application to manage a personal finance
// ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/soniya-kolvekar/finman"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "account")
	c.Register(&summaryCmd{}, "account")

	c.Register(&addIncomeCmd{}, "income & expenses")
	c.Register(&listIncomeCmd{}, "income & expenses")
	c.Register(&addExpenseCmd{}, "income & expenses")
	c.Register(&listExpensesCmd{}, "income & expenses")

	c.Register(&setBudgetCmd{}, "budget & goals")
	c.Register(&listBudgetCmd{}, "budget & goals")
	c.Register(&setGoalCmd{}, "budget & goals")
	c.Register(&addSavingsCmd{}, "budget & goals")
	c.Register(&listGoalsCmd{}, "budget & goals")

	c.Register(&addInvestmentCmd{}, "investments")
	c.Register(&updateInvestmentCmd{}, "investments")
	c.Register(&listInvestmentsCmd{}, "investments")

	c.Register(&addLoanCmd{}, "loans & debts")
	c.Register(&payLoanCmd{}, "loans & debts")
	c.Register(&listLoansCmd{}, "loans & debts")
	c.Register(&addDebtCmd{}, "loans & debts")
	c.Register(&payDebtCmd{}, "loans & debts")
	c.Register(&listDebtsCmd{}, "loans & debts")
}

// config holds the environment defaults; every value can be overridden by a
// flag.
type config struct {
	File     string `env:"FINMAN_FILE" envDefault:"finman.json"`
	User     string `env:"FINMAN_USER"`
	Password string `env:"FINMAN_PASSWORD"`
	Plain    bool   `env:"FINMAN_PLAIN"`
}

func loadConfig() config {
	var c config
	if err := env.Parse(&c); err != nil {
		log.Printf("warning, cannot parse environment: %v", err)
		c.File = "finman.json"
	}
	return c
}

var cfg = loadConfig()

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", cfg.File, "Path to the store document (JSON)")
var username = flag.String("u", cfg.User, "Username of the ledger owner")
var password = flag.String("p", cfg.Password, "Password of the ledger owner")
var plain = flag.Bool("plain", cfg.Plain, "Print raw markdown instead of rendering for the terminal")

// LoadStore opens the store document, starting with an empty store when the
// file does not exist yet.
func LoadStore() (*finman.Store, error) {
	f, err := os.Open(*storeFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, store does not exist, starting with an empty one")
		return finman.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open store %q: %w", *storeFile, err)
	}
	defer f.Close()
	return finman.DecodeStore(f)
}

// SaveStore persists the whole store document. Every mutation is followed by
// a full save, there is no incremental persistence.
func SaveStore(s *finman.Store) error {
	f, err := os.Create(*storeFile)
	if err != nil {
		return fmt.Errorf("cannot create store %q: %w", *storeFile, err)
	}
	defer f.Close()
	return finman.EncodeStore(f, s)
}

// session loads the store and authenticates the current user.
func session() (*finman.Store, *finman.User, error) {
	store, err := LoadStore()
	if err != nil {
		return nil, nil, err
	}
	if *username == "" {
		return nil, nil, errors.New("missing username: use -u or FINMAN_USER")
	}
	u, err := store.Authenticate(*username, *password)
	if err != nil {
		return nil, nil, err
	}
	return store, u, nil
}

// display renders a markdown report for the terminal, falling back to the
// raw markdown when rendering is disabled or fails.
func display(markdown string) {
	if !*plain {
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0)); err == nil {
			if out, err := r.Render(markdown); err == nil {
				fmt.Print(out)
				return
			}
		}
	}
	fmt.Println(markdown)
}

// fail prints an error and converts it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	if errors.Is(err, finman.ErrValidation) || errors.Is(err, finman.ErrInvalidSelection) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// parseAmount parses a decimal amount flag.
func parseAmount(flagName, value string) (finman.Money, error) {
	if value == "" {
		return finman.Money{}, fmt.Errorf("missing -%s flag", flagName)
	}
	m, err := finman.ParseMoney(value)
	if err != nil {
		return finman.Money{}, fmt.Errorf("invalid -%s %q: %w", flagName, value, err)
	}
	return m, nil
}
