package wallet

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Report holds the income and expense totals of a set of transactions.
type Report struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// add accounts for tx. Transactions of unknown kind are ignored.
// Net is left to close.
func (r *Report) add(tx Transaction) {
	switch tx.Kind {
	case Income:
		r.Income = r.Income.Add(tx.Amount)
	case Expense:
		r.Expense = r.Expense.Add(tx.Amount)
	}
}

// close computes Net from the totals.
func (r *Report) close() {
	r.Net = r.Income.Sub(r.Expense)
}

// Report sums incomes and expenses over the whole store.
//
// Amounts are added regardless of their currency.
func (s *Store) Report() Report {
	var r Report
	for _, tx := range s.transactions {
		r.add(tx)
	}
	r.close()
	return r
}

// ReportByCurrency is like Report but with one Report per currency code.
// Currencies that only have transactions of unknown kind get a zero Report.
func (s *Store) ReportByCurrency() map[string]Report {
	reports := make(map[string]Report)
	for _, tx := range s.transactions {
		r := reports[tx.Currency]
		r.add(tx)
		reports[tx.Currency] = r
	}
	for cur, r := range reports {
		r.close()
		reports[cur] = r
	}
	return reports
}

// Currencies returns the sorted list of currency codes used in the store.
func (s *Store) Currencies() []string {
	return slices.Sorted(maps.Keys(s.ReportByCurrency()))
}
