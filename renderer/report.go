package renderer

import (
	"github.com/etnz/wallet"
)

// ReportOptions holds configuration for rendering a report.
type ReportOptions struct {
	ByCurrency bool // Add a per currency breakdown.
}

// Totals is the display form of a wallet.Report.
type Totals struct {
	Currency string
	Income   string
	Expense  string
	Net      string
}

// Report is the data behind a rendered report.
type Report struct {
	Count      int
	Total      Totals
	Currencies []Totals
}

// NewReport computes the report data of s.
func NewReport(s *wallet.Store, opts ReportOptions) *Report {
	r := &Report{
		Count: s.Len(),
		Total: plainTotals(s.Report()),
	}
	if opts.ByCurrency {
		byCurrency := s.ReportByCurrency()
		for _, cur := range s.Currencies() {
			r.Currencies = append(r.Currencies, moneyTotals(cur, byCurrency[cur]))
		}
	}
	return r
}

// plainTotals formats amounts with two digits: totals mix currencies.
func plainTotals(r wallet.Report) Totals {
	return Totals{
		Income:  r.Income.StringFixed(2),
		Expense: r.Expense.StringFixed(2),
		Net:     r.Net.StringFixed(2),
	}
}

func moneyTotals(cur string, r wallet.Report) Totals {
	return Totals{
		Currency: cur,
		Income:   wallet.M(r.Income, cur).String(),
		Expense:  wallet.M(r.Expense, cur).String(),
		Net:      wallet.M(r.Net, cur).String(),
	}
}

// RenderReport renders the report of s to a markdown string.
func RenderReport(s *wallet.Store, opts ReportOptions) string {
	partials := map[string]string{
		"report_totals":     "report_totals.md",
		"report_currencies": "report_currencies.md",
	}
	return renderTemplate("report", "report.md", partials, NewReport(s, opts))
}
