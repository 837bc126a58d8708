// Package pyinstaller provides the adapter invoking the PyInstaller
// packaging tool.
package pyinstaller

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// toolName is the PyInstaller executable, resolved on PATH. Installing the
// pyinstaller package puts it there.
const toolName = "pyinstaller"

// Builder implements ports.Builder.
type Builder struct {
	runner ports.Runner
}

var _ ports.Builder = (*Builder)(nil)

// NewBuilder creates a new Builder.
func NewBuilder(runner ports.Runner) *Builder {
	return &Builder{
		runner: runner,
	}
}

// Args assembles the fixed PyInstaller argument list for the spec. The order
// matters only for readability of the invocation log; PyInstaller accepts the
// flags in any order.
func Args(spec *domain.Spec) []string {
	args := []string{
		"--onefile",
		"--noconsole",
		"--windowed",
		"--clean",
		"--noconfirm",
		"--name", spec.AppName,
	}

	for _, df := range spec.DataFiles {
		args = append(args, "--add-data", df.Source+":"+df.Dest)
	}

	for _, mod := range spec.HiddenImports {
		args = append(args, "--hidden-import", mod)
	}

	for _, mod := range spec.ExcludeModules {
		args = append(args, "--exclude-module", mod)
	}

	return append(args, spec.EntryPoint)
}

// Build verifies the entry point exists and then invokes PyInstaller with the
// spec's fixed argument list. The entry-point check happens first so that an
// absent source file never reaches the tool.
func (b *Builder) Build(ctx context.Context, spec *domain.Spec, stdout, stderr io.Writer) error {
	if _, err := os.Stat(spec.EntryPoint); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrEntryPointMissing, "path", spec.EntryPoint)
		}
		return zerr.With(zerr.Wrap(err, "failed to stat entry point"), "path", spec.EntryPoint)
	}

	cmd := domain.Command{Name: toolName, Args: Args(spec)}
	if err := b.runner.Run(ctx, cmd, stdout, stderr); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}
	return nil
}
