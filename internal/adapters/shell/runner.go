// Package shell provides the command runner adapter.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

var _ ports.Runner = (*Runner)(nil)

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes cmd and blocks until it exits.
//
// Stdout and stderr are consumed by two pump goroutines that forward complete
// lines to the logger and raw bytes to the optional tee writers. The pumps
// are joined before the exit status is collected.
func (r *Runner) Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // command comes from the packaging spec
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}

	outPipe, err := c.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	errPipe, err := c.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := c.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.String())
	}

	var eg errgroup.Group
	eg.Go(func() error {
		return r.pump(outPipe, stdout, r.logger.Info)
	})
	eg.Go(func() error {
		return r.pump(errPipe, stderr, r.logger.Warn)
	})

	// Wait must not be called before both pipes are drained.
	pumpErr := eg.Wait()

	if err := c.Wait(); err != nil {
		exitCode := -1 // unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.Wrap(err, "command failed")
		wrapped = zerr.With(wrapped, "command", cmd.String())
		return zerr.With(wrapped, "exit_code", exitCode)
	}

	if pumpErr != nil {
		return zerr.Wrap(pumpErr, "failed to read command output")
	}
	return nil
}

// pump forwards src line by line to log and, when tee is non-nil, copies the
// lines (newline restored) to tee.
func (r *Runner) pump(src io.Reader, tee io.Writer, log func(string)) error {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if tee != nil {
			_, _ = io.WriteString(tee, line+"\n")
		}
		log(line)
	}
	return scanner.Err()
}
