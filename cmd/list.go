package cmd

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"os"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	head int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions with their position" }
func (*listCmd) Usage() string {
	return `wallet list [-head <n>]

  Lists transactions, most recent first, with the position used by
  'wallet delete' and 'wallet edit'.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database %q: %v\n", *databaseFile, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Transactions(head(s, c.head)))
	return subcommands.ExitSuccess
}

// head iterates over the first n transactions of s, all of them if n <= 0.
func head(s *wallet.Store, n int) iter.Seq2[int, wallet.Transaction] {
	return func(yield func(int, wallet.Transaction) bool) {
		for i, tx := range s.All() {
			if n > 0 && i >= n {
				return
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}
