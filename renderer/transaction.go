package renderer

import (
	"iter"
	"strconv"
	"strings"

	"github.com/etnz/wallet"
	"github.com/olekukonko/tablewriter"
)

// Transaction renders a transaction to a string.
func Transaction(tx wallet.Transaction) string {
	switch tx.Kind {
	case wallet.Income:
		return "Received " + tx.Money().String() + " for " + tx.Category + " on " + tx.Date.String()
	case wallet.Expense:
		return "Spent " + tx.Money().String() + " on " + tx.Category + " on " + tx.Date.String()
	default:
		return tx.String()
	}
}

// Transactions renders positioned transactions as a markdown table.
func Transactions(txs iter.Seq2[int, wallet.Transaction]) string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"#", "Date", "Kind", "Category", "Amount", "Currency"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	count := 0
	for i, tx := range txs {
		table.Append([]string{
			strconv.Itoa(i),
			tx.Date.String(),
			tx.Kind.String(),
			tx.Category,
			tx.Amount.StringFixed(2),
			tx.Currency,
		})
		count++
	}
	if count == 0 {
		return "No transactions.\n"
	}
	table.Render()
	return b.String()
}
