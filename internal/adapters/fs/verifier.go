package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Verifier implements ports.Verifier.
type Verifier struct {
	hasher ports.Hasher
}

var _ ports.Verifier = (*Verifier)(nil)

// NewVerifier creates a new Verifier.
func NewVerifier(hasher ports.Hasher) *Verifier {
	return &Verifier{
		hasher: hasher,
	}
}

// Verify checks that the built executable exists even though the tool
// reported success, grants the execute bit off-Windows, and returns a report
// with the artifact's size and checksum.
func (v *Verifier) Verify(spec *domain.Spec) (*domain.Report, error) {
	path := spec.BinaryPath()

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrArtifactMissing, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat executable"), "path", path)
	}

	if !spec.Windows() {
		if err := os.Chmod(path, 0o755); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to set execute permission"), "path", path)
		}
	}

	sum, err := v.hasher.SumFile(path)
	if err != nil {
		return nil, err
	}

	return &domain.Report{
		BinaryPath: path,
		SizeBytes:  info.Size(),
		Checksum:   sum,
	}, nil
}
