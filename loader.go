package dotenv

import (
	"os"
	"strings"

	"github.com/osaru07m/dotenv/internal/normalize"
	"github.com/osaru07m/dotenv/sourcefile"
	"go.uber.org/zap"
)

// Load reads KEY=value lines from path into the store.
//
// Steps:
//  1. path must stat as a regular file, otherwise *FileNotFoundError
//  2. the whole file is read before anything is written
//  3. each line is split on the first '=', the key trimmed and upper-cased,
//     the value trimmed and passed through CastValue
//  4. pairs are applied in file order with the same rule as Set
//
// Blank lines, lines without '=' and lines whose key or value the environment
// cannot hold are skipped.
// Without WithOverwrite, keys that already have a non-null value are kept,
// including keys set earlier in the same file.
func (s *Store) Load(path string, opts ...SetOption) error {
	cfg := applySetOptions(opts)

	info, err := os.Stat(path)
	if err != nil {
		return &FileNotFoundError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &FileNotFoundError{Path: path}
	}

	file, err := sourcefile.Read(path, sourcefile.Options{})
	if err != nil {
		return err
	}

	for _, line := range file.Skipped {
		s.logger.Debug("skipping line without assignment",
			zap.String("file", path),
			zap.Int("line", line))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, a := range file.Assignments {
		key := normalize.Key(a.Key)
		if !normalize.ValidKey(key) {
			s.logger.Debug("skipping invalid key",
				zap.String("file", path),
				zap.Int("line", a.Line),
				zap.String("key", key))
			continue
		}

		raw := strings.TrimSpace(a.Value)
		if !normalize.ValidValue(raw) {
			s.logger.Debug("skipping invalid value",
				zap.String("file", path),
				zap.Int("line", a.Line),
				zap.String("key", key))
			continue
		}

		value := CastValue(raw)
		ok, err := s.setLocked(key, value, fileSource(file.Name, a.Line), cfg.overwrite)
		if err != nil {
			return err
		}
		if ok {
			applied++
		}
	}

	s.logger.Debug("loaded env file",
		zap.String("file", path),
		zap.Int("assignments", len(file.Assignments)),
		zap.Int("applied", applied),
		zap.Bool("overwrite", cfg.overwrite))

	return nil
}
