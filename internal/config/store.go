package config

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"github.com/spf13/viper"

	apperrors "github.com/computerscienceiscool/bigly/internal/errors"
)

// snapshot is one consistent state of the store. It is never modified
// after it has been published; writers replace it as a whole.
type snapshot struct {
	source    *viper.Viper
	config    AppConfig
	overrides map[string]string
}

// Store holds the layered configuration of the process. It is created
// once at startup, seeded with Init, and shared by every caller that needs
// configuration.
type Store struct {
	mu       sync.RWMutex
	state    *snapshot
	poisoned bool

	build func(base string, overrides map[string]string) (*layers, error)
}

// NewStore creates an uninitialized store
func NewStore() *Store {
	return &Store{build: buildLayers}
}

// Init builds the configuration from defaultConfig (TOML, may be empty)
// and the environment, replacing any previous state including overrides.
func (s *Store) Init(defaultConfig string) error {
	return s.write("init", func() error {
		built, err := s.build(defaultConfig, nil)
		if err != nil {
			return &apperrors.ConfigError{Op: "init", Err: err}
		}

		s.state = &snapshot{
			source:    built.source,
			config:    built.config,
			overrides: map[string]string{},
		}
		return nil
	})
}

// MergeConfig accepts a secondary configuration file path. Merging a second
// file is not supported: the path is logged and the stored configuration
// is left untouched.
func (s *Store) MergeConfig(path string) error {
	if path == "" {
		return nil
	}

	slog.Debug("ignoring configuration file, merging is not supported", "path", path)
	return nil
}

// Set records an override for key and rebuilds the whole configuration.
// On failure the previous configuration stays in place.
func (s *Store) Set(key, value string) error {
	key = strings.ToLower(key)

	return s.write("set", func() error {
		if s.state == nil {
			return &apperrors.ConfigError{Op: "set", Key: key, Err: apperrors.ErrNotInitialized}
		}
		if !validKey(key) {
			return &apperrors.ConfigError{
				Op:  "set",
				Key: key,
				Err: fmt.Errorf("%w: malformed key", apperrors.ErrInvalidConfig),
			}
		}

		overrides := maps.Clone(s.state.overrides)
		overrides[key] = value

		base, err := renderBaseLayer(s.state.source, overrides)
		if err != nil {
			return &apperrors.ConfigError{Op: "set", Key: key, Err: err}
		}

		built, err := s.build(base, overrides)
		if err != nil {
			return &apperrors.ConfigError{Op: "set", Key: key, Err: err}
		}

		s.state = &snapshot{
			source:    built.source,
			config:    built.config,
			overrides: overrides,
		}

		slog.Debug("configuration override applied", "key", key)
		return nil
	})
}

// Fetch returns a copy of the typed configuration
func (s *Store) Fetch() (AppConfig, error) {
	var cfg AppConfig
	err := s.read("fetch", "", func(state *snapshot) error {
		cfg = state.config
		return nil
	})
	return cfg, err
}

// overrides returns a copy of the overrides applied so far
func (s *Store) overrides() (map[string]string, error) {
	var overrides map[string]string
	err := s.read("overrides", "", func(state *snapshot) error {
		overrides = maps.Clone(state.overrides)
		return nil
	})
	return overrides, err
}

// Get looks up a dotted key in the layered source and converts it to T
func Get[T any](s *Store, key string) (T, error) {
	var out T
	err := s.read("get", key, func(state *snapshot) error {
		if !state.source.IsSet(key) {
			return &apperrors.ConfigError{Op: "get", Key: key, Err: apperrors.ErrKeyNotFound}
		}

		if err := weakDecode(state.source.Get(key), &out); err != nil {
			return &apperrors.ConfigError{
				Op:  "get",
				Key: key,
				Err: fmt.Errorf("%w: %v", apperrors.ErrInvalidConfig, err),
			}
		}
		return nil
	})
	return out, err
}

// validKey reports whether key is a dotted path without empty segments
func validKey(key string) bool {
	for _, segment := range strings.Split(key, ".") {
		if segment == "" {
			return false
		}
	}
	return true
}

// read runs fn against the current snapshot under the read lock
func (s *Store) read(op, key string, fn func(*snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.poisoned {
		return &apperrors.PoisonError{Op: op}
	}
	if s.state == nil {
		return &apperrors.ConfigError{Op: op, Key: key, Err: apperrors.ErrNotInitialized}
	}

	return fn(s.state)
}

// write runs fn under the write lock. A panic inside fn poisons the store:
// it is reported as a PoisonError now and on every later call.
func (s *Store) write(op string, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return &apperrors.PoisonError{Op: op}
	}

	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			err = &apperrors.PoisonError{Op: op, Cause: r}
		}
	}()

	return fn()
}
