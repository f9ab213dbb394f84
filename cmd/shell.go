package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage transactions from an interactive menu" }
func (*shellCmd) Usage() string {
	return `wallet shell

  Loads the database and runs the interactive menu. The database is saved
  when leaving the menu, or when the input ends.
  This is the default command.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database %q: %v\n", *databaseFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Loaded %d transactions from %s.\n", s.Len(), *databaseFile)

	if err := newShell(os.Stdin, os.Stdout, s, CloseStore).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// errEOF stops the menu when the input is exhausted.
var errEOF = errors.New("end of input")

// shell is the interactive menu over a store.
type shell struct {
	in    *bufio.Scanner
	out   io.Writer
	store *wallet.Store
	save  func(*wallet.Store) error
}

func newShell(r io.Reader, w io.Writer, s *wallet.Store, save func(*wallet.Store) error) *shell {
	return &shell{in: bufio.NewScanner(r), out: w, store: s, save: save}
}

const menu = `
Wallet Program Menu:
1. Add Transaction
2. Delete Transaction
3. Edit Transaction
4. Generate Report
5. Save and Exit
`

// Run shows the menu until the user saves and exits or the input ends.
// On end of input the store is saved too, and a save failure is returned.
func (sh *shell) Run() error {
	for {
		fmt.Fprint(sh.out, menu)
		choice, err := sh.prompt("Enter your choice: ")
		if err != nil {
			return sh.exit()
		}

		switch choice {
		case "1":
			err = sh.add()
		case "2":
			err = sh.delete()
		case "3":
			err = sh.edit()
		case "4":
			sh.report()
		case "5":
			if err := sh.exit(); err != nil {
				fmt.Fprintf(sh.out, "Error: could not save data: %v\n", err)
				continue
			}
			return nil
		default:
			fmt.Fprintln(sh.out, "Invalid choice. Please try again.")
		}
		if errors.Is(err, errEOF) {
			return sh.exit()
		}
	}
}

func (sh *shell) exit() error {
	if err := sh.save(sh.store); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Database saved successfully.")
	fmt.Fprintln(sh.out, "Exiting program.")
	return nil
}

// prompt prints msg and reads one line of input.
func (sh *shell) prompt(msg string) (string, error) {
	fmt.Fprint(sh.out, msg)
	if !sh.in.Scan() {
		fmt.Fprintln(sh.out)
		return "", errEOF
	}
	return strings.TrimSpace(sh.in.Text()), nil
}

// invalid reports an input error to the user. Only end of input is returned.
func (sh *shell) invalid(err error) error {
	if errors.Is(err, errEOF) {
		return err
	}
	fmt.Fprintf(sh.out, "Invalid input: %v\n", err)
	return nil
}

func (sh *shell) add() error {
	line, err := sh.prompt("Enter date (year month day): ")
	if err != nil {
		return err
	}
	on, err := wallet.ParseDate(line)
	if err != nil {
		return sh.invalid(err)
	}

	line, err = sh.prompt("Enter type (I for income, E for expense): ")
	if err != nil {
		return err
	}
	kind, err := wallet.ParseKind(line)
	if err != nil {
		return sh.invalid(err)
	}

	category, err := sh.prompt("Enter category: ")
	if err != nil {
		return err
	}

	line, err = sh.prompt("Enter amount: ")
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(line)
	if err != nil {
		return sh.invalid(fmt.Errorf("invalid amount %q", line))
	}

	currency, err := sh.prompt("Enter currency: ")
	if err != nil {
		return err
	}

	sh.store.Add(wallet.NewTransaction(on, kind, category, amount, currency))
	fmt.Fprintln(sh.out, "Transaction added successfully.")
	return nil
}

// position shows the transactions and reads a position.
func (sh *shell) position(action string) (int, error) {
	fmt.Fprint(sh.out, renderer.Transactions(sh.store.All()))
	line, err := sh.prompt("Enter the index of transaction to " + action + ": ")
	if err != nil {
		return 0, err
	}
	pos, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", wallet.ErrIndexOutOfRange, line)
	}
	return pos, nil
}

func (sh *shell) delete() error {
	if sh.store.Len() == 0 {
		fmt.Fprintln(sh.out, "No transactions to delete.")
		return nil
	}
	pos, err := sh.position("delete")
	if errors.Is(err, errEOF) {
		return err
	}
	if err == nil {
		_, err = sh.store.Delete(pos)
	}
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid index.")
		return nil
	}
	fmt.Fprintln(sh.out, "Transaction deleted successfully.")
	return nil
}

func (sh *shell) edit() error {
	if sh.store.Len() == 0 {
		fmt.Fprintln(sh.out, "No transactions to edit.")
		return nil
	}
	pos, err := sh.position("edit")
	if errors.Is(err, errEOF) {
		return err
	}
	if err == nil {
		_, err = sh.store.At(pos)
	}
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid index.")
		return nil
	}

	fmt.Fprintf(sh.out, "Editing transaction %d\n", pos)
	u, err := sh.readUpdate()
	if err != nil {
		return sh.invalid(err)
	}
	if _, err := sh.store.Edit(pos, u); err != nil {
		fmt.Fprintln(sh.out, "Invalid index.")
		return nil
	}
	fmt.Fprintln(sh.out, "Transaction edited successfully.")
	return nil
}

// readUpdate reads every field of an update, nothing is changed on error.
func (sh *shell) readUpdate() (wallet.Update, error) {
	u := wallet.NewUpdate()

	line, err := sh.prompt("Enter new date (year month day) or -1 to skip: ")
	if err != nil {
		return u, err
	}
	if line != strconv.Itoa(wallet.Skip) {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return u, fmt.Errorf("invalid date %q want year month day", line)
		}
		ymd := []*int{&u.Year, &u.Month, &u.Day}
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return u, fmt.Errorf("invalid date %q: %w", line, err)
			}
			*ymd[i] = v
		}
	}

	line, err = sh.prompt("Enter new type (I or E, or '-' to skip): ")
	if err != nil {
		return u, err
	}
	if line != wallet.SkipText {
		if u.Kind, err = wallet.ParseKind(line); err != nil {
			return u, err
		}
	}

	if u.Category, err = sh.prompt("Enter new category or '-' to skip: "); err != nil {
		return u, err
	}

	line, err = sh.prompt("Enter new amount or -1 to skip: ")
	if err != nil {
		return u, err
	}
	if u.Amount, err = decimal.NewFromString(line); err != nil {
		return u, fmt.Errorf("invalid amount %q", line)
	}

	if u.Currency, err = sh.prompt("Enter new currency or '-' to skip: "); err != nil {
		return u, err
	}
	return u, nil
}

func (sh *shell) report() {
	r := sh.store.Report()
	fmt.Fprintf(sh.out, "Total Income: %s\n", r.Income.StringFixed(2))
	fmt.Fprintf(sh.out, "Total Expense: %s\n", r.Expense.StringFixed(2))
	fmt.Fprintf(sh.out, "Net Balance: %s\n", r.Net.StringFixed(2))
}
