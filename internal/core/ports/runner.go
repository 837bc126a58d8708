package ports

import (
	"context"
	"io"

	"github.com/novelreader/novelpack/internal/core/domain"
)

// Runner defines the interface for executing external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes cmd and blocks until it exits.
	//
	// The command's stdout and stderr are streamed line by line to the
	// logger and additionally copied raw to the stdout/stderr writers when
	// they are non-nil.
	//
	// A nonzero exit returns an error carrying the exit code as metadata.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
