package fs_test

import (
	"os"
	"testing"

	"github.com/novelreader/novelpack/internal/adapters/fs"
	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerifier_Verify(t *testing.T) {
	t.Chdir(t.TempDir())

	spec := domain.DefaultSpec()
	spec.GOOS = "linux"

	require.NoError(t, os.MkdirAll(spec.DistDir, 0o755))
	content := []byte("fake executable content")
	require.NoError(t, os.WriteFile(spec.BinaryPath(), content, 0o644))

	verifier := fs.NewVerifier(fs.NewHasher())

	report, err := verifier.Verify(spec)
	require.NoError(t, err)
	require.Equal(t, spec.BinaryPath(), report.BinaryPath)
	require.Equal(t, int64(len(content)), report.SizeBytes)
	require.Regexp(t, "^[0-9a-f]{16}$", report.Checksum)

	// The execute bit was granted.
	info, err := os.Stat(spec.BinaryPath())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestVerifier_Verify_MissingArtifact(t *testing.T) {
	t.Chdir(t.TempDir())

	spec := domain.DefaultSpec()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The hasher must never run when the artifact is absent.
	hasher := mocks.NewMockHasher(ctrl)

	verifier := fs.NewVerifier(hasher)

	_, err := verifier.Verify(spec)
	require.ErrorIs(t, err, domain.ErrArtifactMissing)
}

func TestVerifier_Verify_HasherFails(t *testing.T) {
	t.Chdir(t.TempDir())

	spec := domain.DefaultSpec()
	spec.GOOS = "linux"

	require.NoError(t, os.MkdirAll(spec.DistDir, 0o755))
	require.NoError(t, os.WriteFile(spec.BinaryPath(), []byte("bin"), 0o755))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := mocks.NewMockHasher(ctrl)
	hasher.EXPECT().SumFile(spec.BinaryPath()).Return("", os.ErrPermission)

	verifier := fs.NewVerifier(hasher)

	_, err := verifier.Verify(spec)
	require.ErrorIs(t, err, os.ErrPermission)
}
