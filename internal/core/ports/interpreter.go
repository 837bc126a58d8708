package ports

import (
	"context"

	"github.com/novelreader/novelpack/internal/core/domain"
)

// Interpreter defines the interface to the ambient Python installation.
//
//go:generate go run go.uber.org/mock/mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type Interpreter interface {
	// Locate resolves the interpreter executable on PATH.
	// It returns domain.ErrInterpreterNotFound when none is available.
	Locate(ctx context.Context) (string, error)

	// Version reports the version of the given interpreter executable.
	Version(ctx context.Context, python string) (domain.PythonVersion, error)

	// ProbeImport attempts to import the named module. A nil return means
	// the module is importable and the installer must not run for it.
	ProbeImport(ctx context.Context, python, module string) error

	// Install installs the named package with pip. It mutates the ambient
	// interpreter environment. A failure is fatal to the run; there is no
	// retry.
	Install(ctx context.Context, python, pkg string) error
}
