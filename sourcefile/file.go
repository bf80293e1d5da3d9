package sourcefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxLineSize is the longest line accepted when Options.MaxLineSize is zero.
const DefaultMaxLineSize = 1 << 20

// ErrLineTooLong is returned when a line exceeds the configured maximum size.
var ErrLineTooLong = errors.New("sourcefile: line too long")

// Options configures file reading behavior.
type Options struct {
	// MaxLineSize limits the length of a single line in bytes.
	// Zero means DefaultMaxLineSize.
	MaxLineSize int
}

// Assignment is a single KEY=value line, split but not yet normalized.
type Assignment struct {
	Key   string // Raw text left of the first '='
	Value string // Raw text right of the first '='
	Line  int    // 1-based line number
}

// File is the parsed content of an env file.
type File struct {
	Name        string       // Source identifier (e.g., "file:.env")
	Assignments []Assignment // In file order
	Skipped     []int        // Line numbers of non-empty lines without '='
}

// Read opens path and parses it.
// Open failures wrap the underlying *os.PathError.
func Read(path string, opts Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file %s: %w", path, err)
	}
	defer f.Close()

	file, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	file.Name = Name(path)
	return file, nil
}

// Parse scans r line by line.
// Empty lines are discarded, lines without '=' are recorded as skipped,
// and everything else is split on the first '='.
func Parse(r io.Reader, opts Options) (*File, error) {
	maxLine := opts.MaxLineSize
	if maxLine <= 0 {
		maxLine = DefaultMaxLineSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, maxLine)), maxLine)

	file := &File{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			file.Skipped = append(file.Skipped, lineNo)
			continue
		}

		file.Assignments = append(file.Assignments, Assignment{
			Key:   key,
			Value: value,
			Line:  lineNo,
		})
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, lineNo+1, maxLine)
		}
		return nil, err
	}

	return file, nil
}

// Name returns a human-readable identifier for path.
func Name(path string) string {
	return "file:" + filepath.Base(path)
}
