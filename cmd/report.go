package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	byCurrency bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display total income, total expense and net balance" }
func (*reportCmd) Usage() string {
	return `wallet report [-by-currency]

  Displays the total income, the total expense and the net balance.
  Totals add amounts regardless of their currency, use -by-currency for
  a breakdown.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.byCurrency, "by-currency", false, "Add totals per currency.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database %q: %v\n", *databaseFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderReport(s, renderer.ReportOptions{ByCurrency: c.byCurrency}))
	return subcommands.ExitSuccess
}
