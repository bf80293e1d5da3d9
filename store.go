package dotenv

import (
	"fmt"
	"sort"
	"sync"

	"github.com/osaru07m/dotenv/internal/normalize"
	"go.uber.org/zap"
)

// Store holds loaded variables and mirrors every write into an Environment.
// Keys are upper-cased. Lookups consult loaded variables first, then the environment.
// Thread-safe.
type Store struct {
	env    Environment
	logger *zap.Logger

	mu      sync.RWMutex
	vars    map[string]Scalar
	keys    []string // sorted
	origins map[string]string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for debug events. Default: no-op.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// SetOption configures a single Set or Load call.
type SetOption func(*setConfig)

type setConfig struct {
	overwrite bool
}

// WithOverwrite lets Set and Load replace keys that already have a non-null value.
func WithOverwrite() SetOption {
	return func(cfg *setConfig) {
		cfg.overwrite = true
	}
}

func applySetOptions(opts []SetOption) setConfig {
	var cfg setConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// New creates a Store backed by env.
// Use sourceenv.OS() for the real process environment.
func New(env Environment, opts ...StoreOption) *Store {
	s := &Store{
		env:     env,
		logger:  zap.NewNop(),
		vars:    make(map[string]Scalar),
		keys:    make([]string, 0),
		origins: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value of key, or Null if it is absent.
func (s *Store) Get(key string) Scalar {
	return s.GetOr(key, Null())
}

// GetOr returns the value of key, or def if it is absent.
// Loaded values take precedence over the environment; a loaded Null counts as absent.
func (s *Store) GetOr(key string, def Scalar) Scalar {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def
}

// Lookup returns the value of key and whether it is present.
// Values inherited from the environment are returned as raw strings.
func (s *Store) Lookup(key string) (Scalar, bool) {
	key = normalize.Key(key)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookupLocked(key)
}

func (s *Store) lookupLocked(key string) (Scalar, bool) {
	if v, ok := s.vars[key]; ok {
		return v, !v.IsNull()
	}
	if raw, ok := s.env.LookupEnv(key); ok {
		return StringValue(raw), true
	}
	return Null(), false
}

// GetAll returns the environment merged with loaded variables, loaded winning on collision.
// Environment keys keep their original case.
func (s *Store) GetAll() map[string]Scalar {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allLocked()
}

func (s *Store) allLocked() map[string]Scalar {
	result := make(map[string]Scalar)
	for _, entry := range s.env.Environ() {
		key, value, ok := normalize.SplitEnviron(entry)
		if !ok {
			continue
		}
		result[key] = StringValue(value)
	}
	for key, v := range s.vars {
		result[key] = v
	}
	return result
}

// Keys returns the loaded keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Entries returns the loaded variables sorted by key.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, Entry{Key: key, Value: s.vars[key]})
	}
	return out
}

// Set stores v under key and writes v.String() to the environment.
// Without WithOverwrite, Set is a no-op when key already has a non-null value.
// Returns ErrInvalidKey or ErrInvalidValue for input the environment cannot hold.
func (s *Store) Set(key string, v Scalar, opts ...SetOption) error {
	cfg := applySetOptions(opts)
	key = normalize.Key(key)
	if !normalize.ValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if !normalize.ValidValue(v.String()) {
		return fmt.Errorf("%w: %s holds a NUL byte", ErrInvalidValue, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.setLocked(key, v, SourceSet, cfg.overwrite)
	return err
}

// setLocked applies the insert-if-absent rule. Reports whether the value was written.
func (s *Store) setLocked(key string, v Scalar, source string, overwrite bool) (bool, error) {
	if !overwrite {
		if _, exists := s.lookupLocked(key); exists {
			s.logger.Debug("keeping existing value",
				zap.String("key", key),
				zap.String("source", source))
			return false, nil
		}
	}

	if err := s.env.Setenv(key, v.String()); err != nil {
		return false, fmt.Errorf("set %s: %w", key, err)
	}

	if _, exists := s.vars[key]; !exists {
		i := sort.SearchStrings(s.keys, key)
		s.keys = append(s.keys, "")
		copy(s.keys[i+1:], s.keys[i:])
		s.keys[i] = key
	}
	s.vars[key] = v
	s.origins[key] = source
	return true, nil
}
