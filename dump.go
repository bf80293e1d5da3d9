package dotenv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/osaru07m/dotenv/internal/normalize"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// redactedValue replaces the value of redacted keys in dump output.
const redactedValue = "***redacted***"

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	format        dumpFormat
	withSources   bool            // Append source attribution (text only)
	withInherited bool            // Include variables inherited from the environment
	indent        string          // Indentation for JSON output (default: "  ")
	redact        map[string]bool // Normalized keys to redact
}

// WithSources includes source attribution for each key in text output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// WithInherited includes variables inherited from the environment.
func WithInherited() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withInherited = true
	}
}

// AsJSON outputs a JSON object with typed values.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs a YAML mapping with typed values.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML outputs a flat TOML table. TOML has no null, so null values are written as "".
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  "); empty means compact.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// WithRedact replaces the values of the given keys with "***redacted***".
// Matching is case-insensitive.
func WithRedact(keys ...string) DumpOption {
	return func(cfg *dumpConfig) {
		for _, k := range keys {
			cfg.redact[normalize.Key(k)] = true
		}
	}
}

type dumpEntry struct {
	key    string
	value  Scalar
	source string
}

// Dump writes the store's variables to w, sorted by key.
// By default only loaded variables are written, as KEY=value lines.
func Dump(w io.Writer, s *Store, opts ...DumpOption) error {
	if s == nil {
		return fmt.Errorf("store is nil")
	}

	config := dumpConfig{
		indent: "  ",
		redact: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&config)
	}

	entries := collectEntries(s, config)

	switch config.format {
	case formatJSON:
		return dumpAsJSON(w, entries, config)
	case formatYAML:
		return dumpAsYAML(w, entries)
	case formatTOML:
		return dumpAsTOML(w, entries)
	default:
		return dumpAsText(w, entries, config)
	}
}

// collectEntries snapshots the store and applies redaction.
func collectEntries(s *Store, config dumpConfig) []dumpEntry {
	entries := s.dumpEntries(config.withInherited)

	for i := range entries {
		if config.redact[normalize.Key(entries[i].key)] {
			entries[i].value = StringValue(redactedValue)
		}
	}

	return entries
}

// dumpEntries returns values and their sources sorted by key, read under one lock.
// Keys without a recorded origin are inherited from the environment.
func (s *Store) dumpEntries(withInherited bool) []dumpEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !withInherited {
		entries := make([]dumpEntry, 0, len(s.keys))
		for _, k := range s.keys {
			entries = append(entries, dumpEntry{key: k, value: s.vars[k], source: s.origins[k]})
		}
		return entries
	}

	all := s.allLocked()
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]dumpEntry, 0, len(keys))
	for _, k := range keys {
		source := SourceEnv
		if src, ok := s.origins[k]; ok {
			source = src
		}
		entries = append(entries, dumpEntry{key: k, value: all[k], source: source})
	}
	return entries
}

// dumpAsText outputs KEY=value lines.
func dumpAsText(w io.Writer, entries []dumpEntry, config dumpConfig) error {
	for _, e := range entries {
		line := e.key + "=" + textValue(e.value)
		if config.withSources && e.source != "" {
			line += fmt.Sprintf(" (source: %s)", e.source)
		}
		line += "\n"

		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

// textValue quotes strings that Load would not read back unchanged.
func textValue(v Scalar) string {
	s := v.String()
	if v.Kind() != KindString {
		return s
	}
	if !CastValue(s).Equal(v) || strings.TrimSpace(s) != s {
		return `"` + s + `"`
	}
	return s
}

// dumpAsJSON outputs a JSON object. Keys are written in sorted order.
func dumpAsJSON(w io.Writer, entries []dumpEntry, config dumpConfig) error {
	result := make(map[string]any, len(entries))
	for _, e := range entries {
		result[e.key] = e.value.Any()
	}

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(result, "", config.indent)
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// dumpAsYAML outputs a YAML mapping. yaml.v3 sorts map keys.
func dumpAsYAML(w io.Writer, entries []dumpEntry) error {
	result := make(map[string]any, len(entries))
	for _, e := range entries {
		result[e.key] = e.value.Any()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// dumpAsTOML outputs a flat TOML table.
func dumpAsTOML(w io.Writer, entries []dumpEntry) error {
	result := make(map[string]any, len(entries))
	for _, e := range entries {
		if e.value.IsNull() {
			result[e.key] = ""
			continue
		}
		result[e.key] = e.value.Any()
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(result); err != nil {
		return fmt.Errorf("failed to marshal TOML: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}
