package wallet

import "github.com/shopspring/decimal"

// Sentinels meaning "leave this field unchanged" in an Update.
//
// A field can therefore never be set to exactly -1 (date components and amount)
// or to "-" (category and currency) through an Update.
const (
	Skip     = -1
	SkipText = "-"
	SkipKind = Kind('-')
)

var skipAmount = decimal.NewFromInt(Skip)

// Update is a partial update of a Transaction.
//
// Each field either carries the new value or its skip sentinel. Use NewUpdate
// to start from an update that changes nothing: the zero value of Update would
// overwrite date and amount with zeros.
type Update struct {
	Year     int
	Month    int
	Day      int
	Kind     Kind
	Category string
	Amount   decimal.Decimal
	Currency string
}

// NewUpdate returns an Update with every field set to its skip sentinel.
func NewUpdate() Update {
	return Update{
		Year:     Skip,
		Month:    Skip,
		Day:      Skip,
		Kind:     SkipKind,
		Category: SkipText,
		Amount:   skipAmount,
		Currency: SkipText,
	}
}

// IsNoop reports whether applying u leaves any transaction unchanged.
func (u Update) IsNoop() bool {
	return u.Year == Skip && u.Month == Skip && u.Day == Skip &&
		skipKind(u.Kind) && skipText(u.Category) &&
		u.Amount.Equal(skipAmount) && skipText(u.Currency)
}

// Apply returns a copy of tx with the fields set in u overwritten.
func (u Update) Apply(tx Transaction) Transaction {
	if u.Year != Skip {
		tx.Date.Year = u.Year
	}
	if u.Month != Skip {
		tx.Date.Month = u.Month
	}
	if u.Day != Skip {
		tx.Date.Day = u.Day
	}
	if !skipKind(u.Kind) {
		tx.Kind = u.Kind
	}
	if !skipText(u.Category) {
		tx.Category = u.Category
	}
	if !u.Amount.Equal(skipAmount) {
		tx.Amount = u.Amount
	}
	if !skipText(u.Currency) {
		tx.Currency = u.Currency
	}
	return tx.normalize()
}

// empty values cannot be stored either, they are treated as unset.
func skipText(s string) bool { return s == SkipText || s == "" }
func skipKind(k Kind) bool   { return k == SkipKind || k == 0 }
