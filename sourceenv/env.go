package sourceenv

import (
	"os"
	"sort"
	"sync"
	"syscall"

	"github.com/osaru07m/dotenv/internal/normalize"
)

// Process is the live environment of the running process.
type Process struct{}

// OS returns an environment backed by package os.
func OS() Process {
	return Process{}
}

// LookupEnv retrieves a variable from the process environment.
func (Process) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Environ returns a copy of the process environment as "KEY=value" strings.
func (Process) Environ() []string {
	return os.Environ()
}

// Setenv sets a variable in the process environment.
// Child processes started afterwards inherit it.
func (Process) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Map is an in-memory environment table.
// Use it in tests or sandboxes instead of mutating the real process environment.
// Thread-safe.
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMap creates a Map seeded with a copy of vars.
func NewMap(vars map[string]string) *Map {
	m := &Map{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

// Snapshot creates a Map seeded from the current process environment.
func Snapshot() *Map {
	m := NewMap(nil)
	for _, entry := range os.Environ() {
		if key, value, ok := normalize.SplitEnviron(entry); ok {
			m.vars[key] = value
		}
	}
	return m
}

// LookupEnv retrieves a variable from the table.
func (m *Map) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vars[key]
	return v, ok
}

// Environ returns the table as "KEY=value" strings sorted by key.
func (m *Map) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.vars))
	for k, v := range m.vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Setenv sets a variable in the table.
// Like os.Setenv, it rejects empty keys, keys containing '=' or NUL, and values containing NUL.
func (m *Map) Setenv(key, value string) error {
	if !normalize.ValidKey(key) || !normalize.ValidValue(value) {
		return os.NewSyscallError("setenv", syscall.EINVAL)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.vars[key] = value
	return nil
}

