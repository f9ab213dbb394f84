// Command wallet records incomes and expenses in a flat file database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/wallet/cmd"
	"github.com/etnz/wallet/logging"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// Handles shell completion requests, returns immediately otherwise.
	cmd.Completion().Complete("wallet")

	flag.Parse()
	if err := cmd.Configure(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}
	os.Exit(run(context.Background(), commander))
}

func run(ctx context.Context, commander *subcommands.Commander) int {
	defer logging.L().Sync()

	if flag.NArg() == 0 {
		return int(cmd.ExecuteDefault(ctx))
	}

	if name := flag.Arg(0); !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			return code
		}
	}
	return int(commander.Execute(ctx))
}

// registered reports whether name is a subcommand of commander.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
