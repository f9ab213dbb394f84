// Package cmd implements the CLI application to manage a wallet.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wallet"
	"github.com/etnz/wallet/logging"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var databaseFile = flag.String("db", wallet.DefaultDatabaseFile, "Path to the wallet database file. Defaults to $"+EnvDatabaseFile+" when set.")
var Verbose = flag.Bool("v", false, "Verbose logging. Defaults to $"+EnvVerbose+" when set.")

// Configure completes the global flags from the environment and an optional
// .env file, then installs the global logger.
// Flags explicitly set on the command line win over the environment.
// It must be called after flag.Parse().
func Configure() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env file: %w", err)
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if v, ok := os.LookupEnv(EnvDatabaseFile); ok && v != "" && !explicit["db"] {
		*databaseFile = v
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok && !explicit["v"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvVerbose, v, err)
		}
		*Verbose = b
	}

	config := logging.DefaultConfig()
	if *Verbose {
		config = logging.VerboseConfig()
	}
	logger, err := logging.NewLogger(config)
	if err != nil {
		return err
	}
	logging.SetGlobal(logger)
	return nil
}

// OpenStore loads the store from the app database file.
// A missing database is not an error, an empty store is returned instead.
func OpenStore() (*wallet.Store, error) {
	s, n, err := wallet.LoadStore(*databaseFile)
	if errors.Is(err, wallet.ErrNoDatabase) {
		logging.L().Warn("database does not exist, starting with an empty database", zap.String("path", *databaseFile))
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	logging.L().Debug("database loaded", zap.String("path", *databaseFile), zap.Int("transactions", n))
	return s, nil
}

// CloseStore saves the store into the app database file.
func CloseStore(s *wallet.Store) error {
	logging.L().Debug("saving database", zap.String("path", *databaseFile), zap.Int("transactions", s.Len()))
	return wallet.SaveStore(*databaseFile, s)
}

// printMarkdown renders md for the terminal, or prints it raw if rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
