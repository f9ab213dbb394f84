package wallet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultDatabaseFile is the name of the database file used when none is given.
const DefaultDatabaseFile = "wallet_database.txt"

// ErrNoDatabase is returned by LoadStore when the database file does not exist.
// It is not fatal: the returned store is empty and usable.
var ErrNoDatabase = errors.New("no existing database")

// LoadStore reads the database file at path.
//
// It returns the store and the number of transactions loaded. If the file does not
// exist, LoadStore returns an empty store along with an error matching both
// ErrNoDatabase and fs.ErrNotExist.
func LoadStore(path string) (*Store, int, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), 0, fmt.Errorf("%w %q: %w", ErrNoDatabase, path, err)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("could not open database %q: %w", path, err)
	}
	defer f.Close()

	store, n, err := DecodeStore(f)
	if err != nil {
		return nil, 0, fmt.Errorf("could not decode database %q: %w", path, err)
	}
	return store, n, nil
}

// SaveStore truncates or creates the database file at path and writes s into it.
//
// A failure leaves s untouched; the file content is then undefined.
func SaveStore(path string, s *Store) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening database %q for writing: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing database %q: %w", path, cerr)
		}
	}()

	if err := EncodeStore(file, s); err != nil {
		return fmt.Errorf("error writing database %q: %w", path, err)
	}
	return nil
}
