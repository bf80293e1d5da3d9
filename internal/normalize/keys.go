package normalize

import "strings"

// Key normalizes a variable name for storage and lookup.
// Surrounding whitespace is removed and the result is upper-cased.
// Examples:
//   - "foo" → "FOO"
//   - "  db_host " → "DB_HOST"
//   - "Api.Key" → "API.KEY"
func Key(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ValidKey reports whether key can be written to the process environment.
// The key must be non-empty and must not contain '=' or NUL.
func ValidKey(key string) bool {
	if key == "" {
		return false
	}
	return !strings.ContainsAny(key, "=\x00")
}

// ValidValue reports whether value can be written to the process environment.
// NUL bytes are rejected.
func ValidValue(value string) bool {
	return !strings.ContainsRune(value, 0)
}

// SplitEnviron splits an "KEY=value" entry as returned by os.Environ.
// Entries without '=' or with an empty key (Windows "=C:" style) are rejected.
func SplitEnviron(entry string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(entry, "=")
	if !ok || key == "" {
		return "", "", false
	}
	return key, value, true
}
