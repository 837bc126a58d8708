package progrock_test

import (
	"context"
	"errors"
	"testing"

	telemetry "github.com/novelreader/novelpack/internal/adapters/telemetry/progrock"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Record(t *testing.T) {
	rec := telemetry.New()
	t.Cleanup(func() { _ = rec.Close() })

	ctx, vertex := rec.Record(context.Background(), "building executable")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)
	require.NotNil(t, vertex.Stdout())
	require.NotNil(t, vertex.Stderr())

	_, err := vertex.Stdout().Write([]byte("tool output\n"))
	require.NoError(t, err)

	vertex.Complete(nil)
}

func TestRecorder_Record_FailedVertex(t *testing.T) {
	rec := telemetry.New()
	t.Cleanup(func() { _ = rec.Close() })

	_, vertex := rec.Record(context.Background(), "verifying artifact")
	vertex.Complete(errors.New("artifact missing"))
}

func TestRecorder_Close(t *testing.T) {
	rec := telemetry.New()
	require.NoError(t, rec.Close())
}
