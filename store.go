package wallet

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrIndexOutOfRange is returned when a position does not address a transaction.
var ErrIndexOutOfRange = errors.New("index out of range")

// Store is an ordered list of transactions, most recent first.
//
// Transactions are addressed by their position in the list. A position is only
// valid until the next mutation: Add shifts every position by one, Delete
// shifts every following position down by one.
type Store struct {
	transactions []Transaction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions.
func (s *Store) Len() int { return len(s.transactions) }

// Add inserts tx at the front of the store and returns its position, always 0.
//
// Category and currency are truncated to their maximum length, Add never fails.
func (s *Store) Add(tx Transaction) int {
	s.transactions = slices.Insert(s.transactions, 0, tx.normalize())
	return 0
}

// At returns the transaction at position i.
func (s *Store) At(i int) (Transaction, error) {
	if err := s.check(i); err != nil {
		return Transaction{}, err
	}
	return s.transactions[i], nil
}

// Delete removes and returns the transaction at position i.
// On error the store is left unchanged.
func (s *Store) Delete(i int) (Transaction, error) {
	if err := s.check(i); err != nil {
		return Transaction{}, err
	}
	tx := s.transactions[i]
	s.transactions = slices.Delete(s.transactions, i, i+1)
	return tx, nil
}

// Edit applies u to the transaction at position i and returns the result.
// On error the store is left unchanged.
func (s *Store) Edit(i int, u Update) (Transaction, error) {
	if err := s.check(i); err != nil {
		return Transaction{}, err
	}
	s.transactions[i] = u.Apply(s.transactions[i])
	return s.transactions[i], nil
}

// All iterates over positions and transactions in store order.
func (s *Store) All() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range s.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Transactions returns a copy of the transactions in store order.
func (s *Store) Transactions() []Transaction {
	return slices.Clone(s.transactions)
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.transactions) {
		return fmt.Errorf("position %d: %w (store has %d transactions)", i, ErrIndexOutOfRange, len(s.transactions))
	}
	return nil
}
