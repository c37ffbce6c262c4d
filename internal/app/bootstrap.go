// Package app wires the configuration store, search engine and command
// tree into a runnable bigly instance.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/computerscienceiscool/bigly/internal/cli"
	"github.com/computerscienceiscool/bigly/internal/config"
	"github.com/computerscienceiscool/bigly/internal/core"
	"github.com/computerscienceiscool/bigly/internal/hazard"
	"github.com/computerscienceiscool/bigly/internal/logging"
	"github.com/computerscienceiscool/bigly/internal/search"
)

// Options configures Bootstrap
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// Fs is searched by the engine and used by the error simulation
	Fs afero.Fs

	// Root is the directory searched when no target file is given
	Root string

	// DefaultConfig is the TOML base layer; empty means no base layer
	DefaultConfig string

	// Seed feeds the hazard generator
	Seed int64
}

// Bootstrap initializes the configuration store, installs the logger and
// builds the command tree.
func Bootstrap(opts Options) (*App, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	store := config.NewStore()
	if err := store.Init(opts.DefaultConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}

	cfg, err := store.Fetch()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Setup(logging.Config{
		Level:  logging.LevelFor(cfg.Debug),
		Output: opts.Stderr,
	})

	engine := search.NewEngine(opts.Fs, opts.Stdout, opts.Root)
	commands := core.NewCommands(engine, store, hazard.NewGenerator(opts.Seed), opts.Fs, opts.Stdout)

	rootCmd := cli.NewRootCommand(store, commands)
	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)

	return &App{root: rootCmd}, nil
}
