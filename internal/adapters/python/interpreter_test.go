package python

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInterpreter_Locate_PrefersPython3(t *testing.T) {
	i := NewInterpreter(nil)
	i.lookPath = func(file string) (string, error) {
		if file == "python3" {
			return "/usr/bin/python3", nil
		}
		return "", errors.New("not found")
	}

	path, err := i.Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/python3", path)
}

func TestInterpreter_Locate_FallsBackToPython(t *testing.T) {
	i := NewInterpreter(nil)
	i.lookPath = func(file string) (string, error) {
		if file == "python" {
			return "/usr/bin/python", nil
		}
		return "", errors.New("not found")
	}

	path, err := i.Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/python", path)
}

func TestInterpreter_Locate_NotFound(t *testing.T) {
	i := NewInterpreter(nil)
	i.lookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	_, err := i.Locate(context.Background())
	require.ErrorIs(t, err, domain.ErrInterpreterNotFound)
}

func TestInterpreter_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, stdout, _ io.Writer) error {
			require.Equal(t, "/usr/bin/python3", cmd.Name)
			require.Equal(t, []string{"-c", versionSnippet}, cmd.Args)
			_, err := io.WriteString(stdout, "3.11.2\n")
			return err
		})

	i := NewInterpreter(runner)

	v, err := i.Version(context.Background(), "/usr/bin/python3")
	require.NoError(t, err)
	require.Equal(t, domain.PythonVersion{Major: 3, Minor: 11, Patch: 2}, v)
}

func TestInterpreter_Version_RunFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("exec failed"))

	i := NewInterpreter(runner)

	_, err := i.Version(context.Background(), "/usr/bin/python3")
	require.Error(t, err)
}

func TestInterpreter_ProbeImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			require.Equal(t, []string{"-c", "import PySide6"}, cmd.Args)
			return nil
		})

	i := NewInterpreter(runner)

	require.NoError(t, i.ProbeImport(context.Background(), "/usr/bin/python3", "PySide6"))
}

func TestInterpreter_Install(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			require.Equal(t, []string{"-m", "pip", "install", "chardet"}, cmd.Args)
			return nil
		})

	i := NewInterpreter(runner)

	require.NoError(t, i.Install(context.Background(), "/usr/bin/python3", "chardet"))
}

func TestInterpreter_Install_Fails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("pip exploded"))

	i := NewInterpreter(runner)

	err := i.Install(context.Background(), "/usr/bin/python3", "chardet")
	require.ErrorIs(t, err, domain.ErrDependencyInstallFailed)
	require.Contains(t, err.Error(), "pip exploded")
}
