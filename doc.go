// Package wallet implements a personal finance ledger persisted to a flat file.
//
// A Store holds income and expense transactions, most recent first, addressed
// by their position. Positions are volatile: any mutation shifts them.
//
// The database is a plain text file with one transaction per line:
//
//	year,month,day,kind,category,amount,currency
//	2024,3,15,E,Groceries,42.50,USD
//
// LoadStore reads it leniently (malformed lines are dropped) and prepends every
// transaction, so the store order is the reverse of the file order. SaveStore
// writes the store order back, amounts with two fractional digits.
//
// This package is the foundation of the `wallet` command-line tool.
package wallet
