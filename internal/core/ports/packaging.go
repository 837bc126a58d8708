package ports

import (
	"context"
	"io"

	"github.com/novelreader/novelpack/internal/core/domain"
)

// Builder defines the interface for invoking the packaging tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=packaging.go -destination=mocks/mock_packaging.go -package=mocks
type Builder interface {
	// Build runs the packaging tool with the spec's fixed argument list.
	// Tool output is copied to stdout/stderr when they are non-nil.
	Build(ctx context.Context, spec *domain.Spec, stdout, stderr io.Writer) error
}

// Cleaner defines the interface for resetting the workspace.
type Cleaner interface {
	// Clean removes the spec's fixed deletion list. Missing entries are not
	// errors; Clean is an idempotent reset.
	Clean(spec *domain.Spec) error
}

// Verifier defines the interface for checking the build artifact.
type Verifier interface {
	// Verify checks that the expected executable exists, grants the execute
	// bit, and returns a report with its size and checksum. An absent
	// executable returns domain.ErrArtifactMissing.
	Verify(spec *domain.Spec) (*domain.Report, error)
}

// Stager defines the interface for assembling the portable distribution.
type Stager interface {
	// Stage builds the portable directory from the verified artifact and
	// records its location in the report.
	Stage(spec *domain.Spec, report *domain.Report) error
}

// Hasher defines the interface for computing artifact checksums.
type Hasher interface {
	// SumFile returns the hex-encoded digest of the file's content.
	SumFile(path string) (string, error)
}
