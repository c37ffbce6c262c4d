// Package core holds the operations behind each bigly command.
package core

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/computerscienceiscool/bigly/internal/config"
	apperrors "github.com/computerscienceiscool/bigly/internal/errors"
)

// simulatedErrorPath never exists; opening it is how the error command fails
const simulatedErrorPath = "this-file-does-not-exist.txt"

// Searcher finds a literal term in one file or across the working tree
type Searcher interface {
	Search(term, target string) error
}

// ConfigFetcher returns the current typed configuration
type ConfigFetcher interface {
	Fetch() (config.AppConfig, error)
}

// HazardGenerator produces a random boolean
type HazardGenerator interface {
	Generate() bool
}

// Commands executes the user-facing operations. Results are written to out.
type Commands struct {
	searcher Searcher
	configs  ConfigFetcher
	hazard   HazardGenerator
	fs       afero.Fs
	out      io.Writer
}

// NewCommands creates the command set
func NewCommands(searcher Searcher, configs ConfigFetcher, hazard HazardGenerator, fs afero.Fs, out io.Writer) *Commands {
	return &Commands{
		searcher: searcher,
		configs:  configs,
		hazard:   hazard,
		fs:       fs,
		out:      out,
	}
}

// Search greps for term in target, or in the whole tree when target is empty
func (c *Commands) Search(term, target string) error {
	if term == "" {
		return fmt.Errorf("search term cannot be empty")
	}

	slog.Debug("searching", "term", term, "target", target)
	return c.searcher.Search(term, target)
}

// Hazard prints the outcome of a random boolean
func (c *Commands) Hazard() error {
	message := "You got it wrong!"
	if c.hazard.Generate() {
		message = "You got it right!"
	}

	if _, err := fmt.Fprintln(c.out, message); err != nil {
		return &apperrors.IoError{Op: "write", Path: "stdout", Err: err}
	}
	return nil
}

// Config prints the current configuration
func (c *Commands) Config() error {
	cfg, err := c.configs.Fetch()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(c.out, "%#v\n", cfg); err != nil {
		return &apperrors.IoError{Op: "write", Path: "stdout", Err: err}
	}
	return nil
}

// SimulateError always fails with an I/O error
func (c *Commands) SimulateError() error {
	slog.Info("We are simulating an error")

	file, err := c.fs.Open(simulatedErrorPath)
	if err != nil {
		return &apperrors.IoError{
			Op:   "open",
			Path: simulatedErrorPath,
			Err:  fmt.Errorf("%w: %v", apperrors.ErrSimulated, err),
		}
	}
	file.Close()

	return &apperrors.IoError{Op: "open", Path: simulatedErrorPath, Err: apperrors.ErrSimulated}
}
