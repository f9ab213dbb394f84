package wallet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// fieldSeparator separates the fields of a persisted transaction:
//
//	year,month,day,kind,category,amount,currency
const fieldSeparator = ","

const fieldCount = 7

// maxLineSize bounds a single persisted line.
const maxLineSize = 1 << 20

// FormatLine returns the persisted form of tx, without the trailing newline.
// The amount is written with exactly two fractional digits.
func FormatLine(tx Transaction) string {
	return strings.Join([]string{
		strconv.Itoa(tx.Date.Year),
		strconv.Itoa(tx.Date.Month),
		strconv.Itoa(tx.Date.Day),
		tx.Kind.String(),
		tx.Category,
		tx.Amount.StringFixed(2),
		tx.Currency,
	}, fieldSeparator)
}

// ParseLine parses a persisted transaction.
//
// It reports false if line does not hold exactly seven fields of the expected
// types: no partial transaction is ever returned. Category and currency may be
// empty, as normalization can leave nothing of them.
func ParseLine(line string) (Transaction, bool) {
	fields := strings.Split(strings.TrimSuffix(line, "\r"), fieldSeparator)
	if len(fields) != fieldCount {
		return Transaction{}, false
	}

	var ymd [3]int
	for i := range ymd {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return Transaction{}, false
		}
		ymd[i] = v
	}

	kind := fields[3]
	if len(kind) != 1 {
		return Transaction{}, false
	}

	category := fields[4]

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[5]))
	if err != nil {
		return Transaction{}, false
	}

	currency := strings.TrimSpace(fields[6])
	if strings.IndexFunc(currency, unicode.IsSpace) >= 0 {
		return Transaction{}, false
	}

	return NewTransaction(NewDate(ymd[0], ymd[1], ymd[2]), Kind(kind[0]), category, amount, currency), true
}

// DecodeStore reads persisted transactions from r and returns a store holding
// them together with the number of transactions read.
//
// Each transaction is inserted at the front of the store, so the store order
// is the reverse of the read order. Malformed lines are skipped silently.
// An error is only returned if r itself fails.
func DecodeStore(r io.Reader) (*Store, int, error) {
	store := NewStore()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	count := 0
	for scanner.Scan() {
		tx, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		store.Add(tx)
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading from input: %w", err)
	}
	return store, count, nil
}

// EncodeStore writes every transaction of s to w, one per line, in store order.
func EncodeStore(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	for _, tx := range s.transactions {
		if _, err := bw.WriteString(FormatLine(tx) + "\n"); err != nil {
			return fmt.Errorf("failed to write transaction: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write transactions: %w", err)
	}
	return nil
}
