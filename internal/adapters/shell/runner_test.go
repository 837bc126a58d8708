package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/novelreader/novelpack/internal/adapters/shell"
	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	runner := shell.NewRunner(mockLogger)

	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	}

	err := runner.Run(context.Background(), cmd, nil, nil)
	require.NoError(t, err)
}

func TestRunner_Run_StderrGoesToWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("boom").Times(1)

	runner := shell.NewRunner(mockLogger)

	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo boom 1>&2"},
	}

	err := runner.Run(context.Background(), cmd, nil, nil)
	require.NoError(t, err)
}

func TestRunner_Run_TeesOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	var stdout bytes.Buffer
	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo captured"},
	}

	err := runner.Run(context.Background(), cmd, &stdout, nil)
	require.NoError(t, err)
	require.Equal(t, "captured\n", stdout.String())
}

func TestRunner_Run_NonzeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger)

	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 7"},
	}

	err := runner.Run(context.Background(), cmd, nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "command failed")
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger)

	cmd := domain.Command{Name: "definitely-not-a-real-binary-7f3a"}

	err := runner.Run(context.Background(), cmd, nil, nil)
	require.Error(t, err)
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := domain.Command{
		Name: "sh",
		Args: []string{"-c", "sleep 10"},
	}

	err := runner.Run(ctx, cmd, nil, nil)
	require.Error(t, err)
}
