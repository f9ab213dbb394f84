package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// updateStore loads the store, applies mutate and saves the store back.
func updateStore(mutate func(*wallet.Store) (wallet.Transaction, error)) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database %q: %v\n", *databaseFile, err)
		return subcommands.ExitFailure
	}
	tx, err := mutate(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := CloseStore(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving database: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// parsePosition parses the single positional argument of a command.
func parsePosition(f *flag.FlagSet) (int, error) {
	if f.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one position, got %d arguments", f.NArg())
	}
	i, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", f.Arg(0), err)
	}
	return i, nil
}

// --- Add Command ---

type addCmd struct {
	date     string
	kind     string
	category string
	amount   string
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `wallet add [-d <date>] -k <I|E> -c <category> -a <amount> -cur <currency>

  Records a transaction at position 0. Every other position shifts by one.
  Category is cut to 49 characters and currency to 3.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "today", "Transaction date (YYYY-M-D)")
	f.StringVar(&c.kind, "k", "", "Kind: I for income, E for expense")
	f.StringVar(&c.category, "c", "", "Category")
	f.StringVar(&c.amount, "a", "", "Amount")
	f.StringVar(&c.currency, "cur", "", "Currency code")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.kind == "" || c.category == "" || c.amount == "" || c.currency == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := wallet.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	kind, err := wallet.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing kind: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := wallet.NewTransaction(day, kind, c.category, amount, c.currency)
	return updateStore(func(s *wallet.Store) (wallet.Transaction, error) {
		return s.At(s.Add(tx))
	})
}

// --- Delete Command ---

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete the transaction at a position" }
func (*deleteCmd) Usage() string {
	return `wallet delete <position>

  Deletes the transaction at <position>, as shown by 'wallet list'.
  Following positions shift down by one.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pos, err := parsePosition(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	return updateStore(func(s *wallet.Store) (wallet.Transaction, error) {
		return s.Delete(pos)
	})
}

// --- Edit Command ---

type editCmd struct {
	date     string
	year     int
	month    int
	day      int
	kind     string
	category string
	amount   string
	currency string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of the transaction at a position" }
func (*editCmd) Usage() string {
	return `wallet edit [-d <date>] [-year <y>] [-month <m>] [-day <d>] [-k <I|E>] [-c <category>] [-a <amount>] [-cur <currency>] <position>

  Changes the given fields of the transaction at <position>, as shown by 'wallet list'.
  Numeric fields set to -1 and text fields set to '-' are left unchanged.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "New date (YYYY-M-D), sets year, month and day at once")
	f.IntVar(&c.year, "year", wallet.Skip, "New year")
	f.IntVar(&c.month, "month", wallet.Skip, "New month")
	f.IntVar(&c.day, "day", wallet.Skip, "New day")
	f.StringVar(&c.kind, "k", wallet.SkipText, "New kind: I for income, E for expense")
	f.StringVar(&c.category, "c", wallet.SkipText, "New category")
	f.StringVar(&c.amount, "a", strconv.Itoa(wallet.Skip), "New amount")
	f.StringVar(&c.currency, "cur", wallet.SkipText, "New currency code")
}

// update builds the partial update described by the flags.
func (c *editCmd) update() (wallet.Update, error) {
	u := wallet.NewUpdate()
	u.Year, u.Month, u.Day = c.year, c.month, c.day
	if c.date != "" {
		on, err := wallet.ParseDate(c.date)
		if err != nil {
			return u, err
		}
		u.Year, u.Month, u.Day = on.Year, on.Month, on.Day
	}
	if c.kind != wallet.SkipText {
		kind, err := wallet.ParseKind(c.kind)
		if err != nil {
			return u, err
		}
		u.Kind = kind
	}
	u.Category = c.category
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return u, fmt.Errorf("invalid amount %q: %w", c.amount, err)
	}
	u.Amount = amount
	u.Currency = c.currency
	return u, nil
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pos, err := parsePosition(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	u, err := c.update()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return updateStore(func(s *wallet.Store) (wallet.Transaction, error) {
		return s.Edit(pos, u)
	})
}
