package errors

import "fmt"

// Error types for the application
var (
	ErrNotInitialized = fmt.Errorf("CONFIG_NOT_INITIALIZED")
	ErrKeyNotFound    = fmt.Errorf("CONFIG_KEY_NOT_FOUND")
	ErrInvalidConfig  = fmt.Errorf("CONFIG_INVALID")
	ErrPoisoned       = fmt.Errorf("CONFIG_POISONED")
	ErrIsDirectory    = fmt.Errorf("IS_DIRECTORY")
	ErrBinaryFile     = fmt.Errorf("BINARY_FILE")
	ErrSimulated      = fmt.Errorf("SIMULATED_ERROR")
)

// ConfigError wraps failures of the configuration layer: building the
// layered source, deserializing it, or looking up a key.
type ConfigError struct {
	Op  string
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("configuration error in %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("configuration error in %s for key %s: %v", e.Op, e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PoisonError reports that a writer panicked while holding the
// configuration lock. The store stays unusable afterwards.
type PoisonError struct {
	Op    string
	Cause interface{}
}

func (e *PoisonError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("poison error occurred in %s", e.Op)
	}
	return fmt.Sprintf("poison error occurred in %s: %v", e.Op, e.Cause)
}

func (e *PoisonError) Unwrap() error {
	return ErrPoisoned
}

// IoError wraps filesystem open, read, list and write failures
type IoError struct {
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io error in %s for path %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
