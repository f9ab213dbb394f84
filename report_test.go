package wallet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStore_Report(t *testing.T) {
	testCases := []struct {
		name string
		txs  []Transaction
		want Report
	}{
		{
			name: "empty",
			want: Report{Income: d("0"), Expense: d("0"), Net: d("0")},
		},
		{
			name: "income only",
			txs:  []Transaction{tx("2024-1-1", Income, "Salary", "1000", "USD")},
			want: Report{Income: d("1000"), Expense: d("0"), Net: d("1000")},
		},
		{
			name: "mixed",
			txs: []Transaction{
				tx("2024-1-1", Income, "Salary", "1000", "USD"),
				tx("2024-1-2", Expense, "Rent", "500", "USD"),
				tx("2024-1-3", Expense, "Food", "42.50", "EUR"),
			},
			want: Report{Income: d("1000"), Expense: d("542.50"), Net: d("457.50")},
		},
		{
			name: "unknown kinds are ignored",
			txs: []Transaction{
				tx("2024-1-1", Kind('X'), "Mystery", "99", "USD"),
				tx("2024-1-2", Expense, "Rent", "500", "USD"),
			},
			want: Report{Income: d("0"), Expense: d("500"), Net: d("-500")},
		},
		{
			name: "unknown kinds only",
			txs:  []Transaction{tx("2024-1-1", Kind('X'), "Mystery", "99", "USD")},
			want: Report{Income: d("0"), Expense: d("0"), Net: d("0")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := newTestStore(tc.txs...).Report()
			if !got.Income.Equal(tc.want.Income) || !got.Expense.Equal(tc.want.Expense) || !got.Net.Equal(tc.want.Net) {
				t.Errorf("Report() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestStore_ReportByCurrency(t *testing.T) {
	s := newTestStore(
		tx("2024-1-1", Income, "Salary", "1000", "USD"),
		tx("2024-1-2", Expense, "Rent", "500", "USD"),
		tx("2024-1-3", Expense, "Food", "42.50", "EUR"),
		tx("2024-1-4", Kind('X'), "Mystery", "1", "CHF"),
	)
	got := s.ReportByCurrency()

	if len(got) != 3 {
		t.Fatalf("ReportByCurrency() has %d currencies, want 3", len(got))
	}
	if usd := got["USD"]; !usd.Net.Equal(d("500")) {
		t.Errorf("USD net = %v, want 500", usd.Net)
	}
	if eur := got["EUR"]; !eur.Expense.Equal(d("42.5")) || !eur.Net.Equal(d("-42.5")) {
		t.Errorf("EUR = %+v, want expense 42.5 net -42.5", eur)
	}
	if chf := got["CHF"]; !chf.Income.IsZero() || !chf.Expense.IsZero() || chf.Net.StringFixed(2) != "0.00" {
		t.Errorf("CHF = %+v, want zero report", chf)
	}
	if diff := cmp.Diff([]string{"CHF", "EUR", "USD"}, s.Currencies()); diff != "" {
		t.Errorf("Currencies() mismatch (-want +got):\n%s", diff)
	}
}
