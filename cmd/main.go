package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// Commands lists the wallet subcommands by group.
var Commands = map[string][]subcommands.Command{
	"transactions": {&addCmd{}, &deleteCmd{}, &editCmd{}},
	"reports":      {&listCmd{}, &reportCmd{}},
	"database":     {&shellCmd{}, &fmtCmd{}},
	"help":         {&topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, group := range []string{"transactions", "reports", "database", "help"} {
		for _, cmd := range Commands[group] {
			c.Register(cmd, group)
		}
	}
}

// ExecuteDefault runs the interactive shell, used when no subcommand is given.
func ExecuteDefault(ctx context.Context) subcommands.ExitStatus {
	c := &shellCmd{}
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	return c.Execute(ctx, f)
}
