package dotenv

import (
	"strconv"

	"github.com/osaru07m/dotenv/internal/normalize"
)

// Source names recorded in Provenance.
const (
	SourceSet = "set" // Written by an explicit Set call
	SourceEnv = "env" // Inherited from the process environment
)

// Provenance describes where a key's value came from.
type Provenance struct {
	Key    string // Normalized key (e.g., "DB_HOST")
	Source string // Source identifier (e.g., "file:.env:3", "set", "env")
}

func fileSource(name string, line int) string {
	return name + ":" + strconv.Itoa(line)
}

// Provenance returns the origin of key.
// Loaded keys report the file and line or "set"; keys only present in the
// process environment report "env". Thread-safe.
func (s *Store) Provenance(key string) (Provenance, bool) {
	key = normalize.Key(key)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if src, ok := s.origins[key]; ok {
		return Provenance{Key: key, Source: src}, true
	}
	if _, ok := s.env.LookupEnv(key); ok {
		return Provenance{Key: key, Source: SourceEnv}, true
	}
	return Provenance{}, false
}
