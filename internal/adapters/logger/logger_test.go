package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/novelreader/novelpack/internal/adapters/logger"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("checking python environment")
	require.Equal(t, "→ checking python environment\n", buf.String())
}

func TestLogger_Success(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Success("PySide6 already installed")
	require.Equal(t, "✓ PySide6 already installed\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Warn("installing chardet")
	require.Equal(t, "! installing chardet\n", buf.String())
}

func TestLogger_Error_PlainError(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(errors.New("something broke"))
	require.Equal(t, "✗ Error: something broke\n", buf.String())
}

func TestLogger_Error_RendersCauseChain(t *testing.T) {
	l, buf := newBufferedLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("exit status 1"), "command failed"), "build failed")
	l.Error(err)

	out := buf.String()
	require.Contains(t, out, "Error: build failed")
	require.Contains(t, out, "Caused by:")
	require.Contains(t, out, "→ command failed")
	require.Contains(t, out, "→ exit status 1")
}

func TestLogger_Error_NilIsNoop(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(nil)
	require.Empty(t, buf.String())
}
