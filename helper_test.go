package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

// tx is a shortcut to build transactions in tests.
func tx(on string, kind Kind, category, amount, currency string) Transaction {
	return NewTransaction(MustParseDate(on), kind, category, decimal.RequireFromString(amount), currency)
}

// newTestStore returns a store whose positions follow the given order.
func newTestStore(txs ...Transaction) *Store {
	s := NewStore()
	for i := len(txs) - 1; i >= 0; i-- {
		s.Add(txs[i])
	}
	return s
}

// writeDatabase writes content to a database file in a temporary folder.
func writeDatabase(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultDatabaseFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write database: %v", err)
	}
	return path
}
