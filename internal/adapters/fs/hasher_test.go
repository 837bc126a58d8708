package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/novelreader/novelpack/internal/adapters/fs"
	"github.com/stretchr/testify/require"
)

func TestHasher_SumFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact")
	require.NoError(t, os.WriteFile(path, []byte("portable build"), 0o644))

	hasher := fs.NewHasher()

	sum, err := hasher.SumFile(path)
	require.NoError(t, err)
	require.Len(t, sum, 16)
	require.Regexp(t, "^[0-9a-f]{16}$", sum)

	// Same content hashes the same.
	again, err := hasher.SumFile(path)
	require.NoError(t, err)
	require.Equal(t, sum, again)

	// Different content hashes differently.
	other := filepath.Join(dir, "other")
	require.NoError(t, os.WriteFile(other, []byte("portable build v2"), 0o644))
	otherSum, err := hasher.SumFile(other)
	require.NoError(t, err)
	require.NotEqual(t, sum, otherSum)
}

func TestHasher_SumFile_Missing(t *testing.T) {
	hasher := fs.NewHasher()

	_, err := hasher.SumFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
