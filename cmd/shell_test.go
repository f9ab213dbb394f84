package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/wallet"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func tx(on string, kind wallet.Kind, category, amount, currency string) wallet.Transaction {
	return wallet.NewTransaction(wallet.MustParseDate(on), kind, category, decimal.RequireFromString(amount), currency)
}

var (
	rent   = tx("2024-1-2", wallet.Expense, "Rent", "500", "USD")
	salary = tx("2024-1-1", wallet.Income, "Salary", "1000", "USD")
)

// runShell runs the menu on input over a store holding txs, in position order.
func runShell(t *testing.T, input string, txs ...wallet.Transaction) (*wallet.Store, string, int) {
	t.Helper()
	s := wallet.NewStore()
	for i := len(txs) - 1; i >= 0; i-- {
		s.Add(txs[i])
	}
	var out strings.Builder
	saves := 0
	save := func(*wallet.Store) error { saves++; return nil }
	if err := newShell(strings.NewReader(input), &out, s, save).Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	return s, out.String(), saves
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestShell_AddAndReport(t *testing.T) {
	s, out, saves := runShell(t, "1\n2024 3 15\nE\nGroceries\n42.50\nUSD\n4\n5\n", salary)

	want := []wallet.Transaction{tx("2024-3-15", wallet.Expense, "Groceries", "42.50", "USD"), salary}
	if diff := cmp.Diff(want, s.Transactions()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
	assertContains(t, out,
		"Wallet Program Menu:",
		"Transaction added successfully.",
		"Total Income: 1000.00",
		"Total Expense: 42.50",
		"Net Balance: 957.50",
		"Database saved successfully.",
		"Exiting program.",
	)
	if saves != 1 {
		t.Errorf("saved %d times, want 1", saves)
	}
}

func TestShell_AddInvalid(t *testing.T) {
	s, out, _ := runShell(t, "1\n2024 3\n1\n2024-3-15\nE\nFood\nmany\n5\n")
	if s.Len() != 0 {
		t.Errorf("store has %d transactions, want 0", s.Len())
	}
	if got := strings.Count(out, "Invalid input"); got != 2 {
		t.Errorf("got %d invalid input messages, want 2:\n%s", got, out)
	}
}

func TestShell_Delete(t *testing.T) {
	s, out, _ := runShell(t, "2\n1\n5\n", rent, salary)
	if diff := cmp.Diff([]wallet.Transaction{rent}, s.Transactions()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
	assertContains(t, out, "Salary", "Transaction deleted successfully.")
}

func TestShell_DeleteInvalid(t *testing.T) {
	for _, index := range []string{"2", "-1", "x"} {
		t.Run(index, func(t *testing.T) {
			s, out, _ := runShell(t, "2\n"+index+"\n5\n", rent, salary)
			if diff := cmp.Diff([]wallet.Transaction{rent, salary}, s.Transactions()); diff != "" {
				t.Errorf("store mismatch (-want +got):\n%s", diff)
			}
			assertContains(t, out, "Invalid index.")
		})
	}
}

func TestShell_DeleteEmpty(t *testing.T) {
	_, out, _ := runShell(t, "2\n3\n5\n")
	assertContains(t, out, "No transactions to delete.", "No transactions to edit.")
}

func TestShell_Edit(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  wallet.Transaction
	}{
		{
			name:  "skip everything",
			input: "3\n1\n-1\n-\n-\n-1\n-\n5\n",
			want:  salary,
		},
		{
			name:  "every field",
			input: "3\n1\n2023 12 31\nE\nBonus\n12.5\nEUR\n5\n",
			want:  tx("2023-12-31", wallet.Expense, "Bonus", "12.5", "EUR"),
		},
		{
			name:  "some date components",
			input: "3\n1\n-1 -1 15\n-\n-\n-1\n-\n5\n",
			want:  tx("2024-1-15", wallet.Income, "Salary", "1000", "USD"),
		},
		{
			name:  "invalid amount changes nothing",
			input: "3\n1\n2023 12 31\nE\nBonus\nlots\n5\n",
			want:  salary,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, out, _ := runShell(t, tc.input, rent, salary)
			if diff := cmp.Diff([]wallet.Transaction{rent, tc.want}, s.Transactions()); diff != "" {
				t.Errorf("store mismatch (-want +got):\n%s", diff)
			}
			assertContains(t, out, "Editing transaction 1")
		})
	}
}

func TestShell_EditInvalidIndex(t *testing.T) {
	s, out, _ := runShell(t, "3\n4\n5\n", rent)
	if diff := cmp.Diff([]wallet.Transaction{rent}, s.Transactions()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
	assertContains(t, out, "Invalid index.")
}

func TestShell_InvalidChoice(t *testing.T) {
	_, out, _ := runShell(t, "9\nadd\n5\n")
	if got := strings.Count(out, "Invalid choice. Please try again."); got != 2 {
		t.Errorf("got %d invalid choice messages, want 2:\n%s", got, out)
	}
}

func TestShell_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "4\n", "1\n2024 1 1\nI\n"} {
		t.Run(input, func(t *testing.T) {
			_, out, saves := runShell(t, input, salary)
			if saves != 1 {
				t.Errorf("saved %d times, want 1", saves)
			}
			assertContains(t, out, "Exiting program.")
		})
	}
}

func TestShell_SaveFailure(t *testing.T) {
	s := wallet.NewStore()
	s.Add(salary)
	var out strings.Builder
	errDisk := errors.New("disk full")
	save := func(*wallet.Store) error { return errDisk }

	err := newShell(strings.NewReader("5\n"), &out, s, save).Run()
	if !errors.Is(err, errDisk) {
		t.Errorf("Run() error = %v, want %v", err, errDisk)
	}
	assertContains(t, out.String(), "Error: could not save data: disk full")
	if s.Len() != 1 {
		t.Errorf("store has %d transactions after a failed save, want 1", s.Len())
	}
}
