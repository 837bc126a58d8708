// Package fs provides filesystem adapters for cleanup, verification,
// hashing, and portable staging.
package fs

import (
	"os"
	"path/filepath"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cleaner implements ports.Cleaner.
type Cleaner struct {
	logger ports.Logger
}

var _ ports.Cleaner = (*Cleaner)(nil)

// NewCleaner creates a new Cleaner.
func NewCleaner(logger ports.Logger) *Cleaner {
	return &Cleaner{
		logger: logger,
	}
}

// Clean removes the spec's deletion list and every spec-glob match in the
// working directory. Entries that do not exist are skipped silently, so a
// second run is a no-op. There is no confirmation; cleanup is an idempotent
// reset by design.
func (c *Cleaner) Clean(spec *domain.Spec) error {
	for _, dir := range spec.CleanDirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", dir)
		}
		c.logger.Info("removed " + dir)
	}

	matches, err := filepath.Glob(spec.SpecGlob)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "bad spec glob"), "glob", spec.SpecGlob)
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove spec file"), "path", match)
		}
		c.logger.Info("removed " + match)
	}

	return nil
}
