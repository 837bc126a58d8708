// Package python provides the adapter to the ambient Python installation.
package python

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// candidates are the interpreter names tried on PATH, in order.
var candidates = []string{"python3", "python"}

// versionSnippet prints the interpreter version as "major.minor.patch".
const versionSnippet = `import sys; print("%d.%d.%d" % sys.version_info[:3])`

// Interpreter implements ports.Interpreter by shelling out to python.
type Interpreter struct {
	runner ports.Runner

	// lookPath is swappable for tests.
	lookPath func(file string) (string, error)
}

var _ ports.Interpreter = (*Interpreter)(nil)

// NewInterpreter creates a new Interpreter.
func NewInterpreter(runner ports.Runner) *Interpreter {
	return &Interpreter{
		runner:   runner,
		lookPath: exec.LookPath,
	}
}

// Locate resolves the interpreter executable on PATH, preferring python3.
func (i *Interpreter) Locate(_ context.Context) (string, error) {
	for _, name := range candidates {
		if path, err := i.lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", zerr.With(domain.ErrInterpreterNotFound, "candidates", strings.Join(candidates, ", "))
}

// Version reports the version of the given interpreter executable.
func (i *Interpreter) Version(ctx context.Context, python string) (domain.PythonVersion, error) {
	var out bytes.Buffer
	cmd := domain.Command{Name: python, Args: []string{"-c", versionSnippet}}
	if err := i.runner.Run(ctx, cmd, &out, nil); err != nil {
		return domain.PythonVersion{}, zerr.Wrap(err, "failed to query python version")
	}
	return domain.ParsePythonVersion(out.String())
}

// ProbeImport attempts to import the named module with the interpreter.
func (i *Interpreter) ProbeImport(ctx context.Context, python, module string) error {
	cmd := domain.Command{Name: python, Args: []string{"-c", "import " + module}}
	return i.runner.Run(ctx, cmd, nil, nil)
}

// Install installs the named package via "python -m pip install".
// A single attempt; failure is fatal to the run.
func (i *Interpreter) Install(ctx context.Context, python, pkg string) error {
	cmd := domain.Command{Name: python, Args: []string{"-m", "pip", "install", pkg}}
	if err := i.runner.Run(ctx, cmd, nil, nil); err != nil {
		return errors.Join(zerr.With(domain.ErrDependencyInstallFailed, "package", pkg), err)
	}
	return nil
}
