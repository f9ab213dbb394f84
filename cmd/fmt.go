package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the database file in its canonical form"
}
func (*fmtCmd) Usage() string {
	return `wallet fmt

  Loads and saves the database file: malformed lines are dropped, amounts are
  written with two decimals and category and currency are cut to their
  maximum length. Like any load and save cycle, it reverses the line order.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load database %q: %v\n", *databaseFile, err)
		return subcommands.ExitFailure
	}
	if err := CloseStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted database: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d transactions in %q.\n", s.Len(), *databaseFile)
	return subcommands.ExitSuccess
}
