package wallet

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	// MaxCategoryLength is the number of characters retained in a category.
	MaxCategoryLength = 49
	// MaxCurrencyLength is the number of characters retained in a currency code.
	MaxCurrencyLength = 3
)

// Kind tells whether a transaction is an income or an expense.
//
// It is persisted as a single byte. Any byte but the field separator and
// line breaks is kept when read back, but only Income and Expense are
// accounted for in reports.
type Kind byte

const (
	Income  Kind = 'I'
	Expense Kind = 'E'
)

// String returns the persisted byte of the kind.
func (k Kind) String() string { return string([]byte{byte(k)}) }

// Label returns a human readable name of the kind.
func (k Kind) Label() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a single character kind. Both cases are accepted for
// the known kinds. Any other printable ASCII character is returned as is,
// except the field separator.
func ParseKind(s string) (Kind, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid kind %q want a single character (I or E)", s)
	}
	switch s {
	case "i", "I":
		return Income, nil
	case "e", "E":
		return Expense, nil
	}
	if c := s[0]; c < ' ' || c > '~' || c == fieldSeparator[0] {
		return 0, fmt.Errorf("invalid kind %q want a printable character other than %q", s, fieldSeparator)
	}
	return Kind(s[0]), nil
}

// Transaction is a single income or expense entry.
type Transaction struct {
	Date     Date
	Kind     Kind
	Category string
	Amount   decimal.Decimal
	Currency string
}

// NewTransaction creates a Transaction with category and currency normalized.
func NewTransaction(on Date, kind Kind, category string, amount decimal.Decimal, currency string) Transaction {
	return Transaction{
		Date:     on,
		Kind:     kind,
		Category: normalizeCategory(category),
		Amount:   amount,
		Currency: normalizeCurrency(currency),
	}
}

// normalize returns a copy of tx that honors the field constraints.
func (tx Transaction) normalize() Transaction {
	tx.Category = normalizeCategory(tx.Category)
	tx.Currency = normalizeCurrency(tx.Currency)
	return tx
}

// Equal reports whether both transactions hold the same values.
func (tx Transaction) Equal(o Transaction) bool {
	return tx.Date == o.Date &&
		tx.Kind == o.Kind &&
		tx.Category == o.Category &&
		tx.Amount.Equal(o.Amount) &&
		tx.Currency == o.Currency
}

// String returns a one line description of the transaction.
func (tx Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s %s", tx.Date, tx.Kind, tx.Category, tx.Amount.StringFixed(2), tx.Currency)
}

// normalizeCategory drops field separators and non printable characters,
// then truncates to MaxCategoryLength characters.
func normalizeCategory(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == ',' || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	return truncate(s, MaxCategoryLength)
}

// normalizeCurrency drops blanks, NUL padding and field separators, then
// truncates to MaxCurrencyLength characters. Case is kept as entered.
func normalizeCurrency(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == ',' || r == 0 || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	return truncate(s, MaxCurrencyLength)
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
