package wallet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day as entered by the user.
//
// Components are kept verbatim: a Date is never normalized nor validated, so
// 2024-13-40 is a legal value and is persisted as is.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns the Date with the given components.
func NewDate(year, month, day int) Date { return Date{Year: year, Month: month, Day: day} }

// Today returns the current local date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{y, int(m), d}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day) }

// ParseDate parses a date made of three integers separated by '-', '/' or blanks,
// e.g. "2024-3-15", "2024/03/15" or "2024 3 15". "today" is also accepted.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "today" {
		return Today(), nil
	}
	parts := strings.FieldsFunc(str, func(r rune) bool {
		return r == '-' || r == '/' || r == ' ' || r == '\t'
	})
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q want format YYYY-M-D", str)
	}
	var c [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", str, err)
		}
		c[i] = v
	}
	return Date{c[0], c[1], c[2]}, nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
