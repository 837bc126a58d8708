package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/novelreader/novelpack/internal/adapters/telemetry"
	"github.com/novelreader/novelpack/internal/app"
	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports/mocks"
	"github.com/novelreader/novelpack/internal/engine/packager"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader      *mocks.MockConfigLoader
	interpreter *mocks.MockInterpreter
	cleaner     *mocks.MockCleaner
	builder     *mocks.MockBuilder
	verifier    *mocks.MockVerifier
	stager      *mocks.MockStager
	logger      *mocks.MockLogger
	app         *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		loader:      mocks.NewMockConfigLoader(ctrl),
		interpreter: mocks.NewMockInterpreter(ctrl),
		cleaner:     mocks.NewMockCleaner(ctrl),
		builder:     mocks.NewMockBuilder(ctrl),
		verifier:    mocks.NewMockVerifier(ctrl),
		stager:      mocks.NewMockStager(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Success(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	pkg := packager.NewPackager(
		f.interpreter,
		f.cleaner,
		f.builder,
		f.verifier,
		f.stager,
		telemetry.NewNoOp(),
		f.logger,
	)
	f.app = app.New(f.loader, pkg, f.logger)
	return f
}

func (f *fixture) expectHealthyEnvironment(spec *domain.Spec) {
	f.interpreter.EXPECT().Locate(gomock.Any()).Return("/usr/bin/python3", nil)
	f.interpreter.EXPECT().
		Version(gomock.Any(), "/usr/bin/python3").
		Return(domain.PythonVersion{Major: 3, Minor: 11}, nil)
	for _, dep := range spec.Dependencies {
		f.interpreter.EXPECT().
			ProbeImport(gomock.Any(), "/usr/bin/python3", dep.ImportName).
			Return(nil)
	}
}

func TestApp_Run(t *testing.T) {
	f := newFixture(t)
	spec := domain.DefaultSpec()
	report := &domain.Report{BinaryPath: spec.BinaryPath(), SizeBytes: 42 << 20, Checksum: "deadbeefdeadbeef"}

	f.loader.EXPECT().Load("novelpack.yaml").Return(spec, nil)
	f.expectHealthyEnvironment(spec)
	f.cleaner.EXPECT().Clean(spec).Return(nil)
	f.builder.EXPECT().Build(gomock.Any(), spec, gomock.Any(), gomock.Any()).Return(nil)
	f.verifier.EXPECT().Verify(spec).Return(report, nil)
	f.stager.EXPECT().Stage(spec, report).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), "novelpack.yaml"))
}

func TestApp_Run_ConfigLoadFails(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("broken.yaml").Return(nil, errors.New("bad yaml"))

	err := f.app.Run(context.Background(), "broken.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Run_PipelineFailurePropagates(t *testing.T) {
	f := newFixture(t)
	spec := domain.DefaultSpec()

	f.loader.EXPECT().Load("novelpack.yaml").Return(spec, nil)
	f.interpreter.EXPECT().Locate(gomock.Any()).Return("", domain.ErrInterpreterNotFound)

	err := f.app.Run(context.Background(), "novelpack.yaml")
	require.ErrorIs(t, err, domain.ErrInterpreterNotFound)
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	spec := domain.DefaultSpec()

	f.loader.EXPECT().Load("novelpack.yaml").Return(spec, nil)
	f.cleaner.EXPECT().Clean(spec).Return(nil)

	require.NoError(t, f.app.Clean(context.Background(), "novelpack.yaml"))
}

func TestApp_EnsureDependencies(t *testing.T) {
	f := newFixture(t)
	spec := domain.DefaultSpec()

	f.loader.EXPECT().Load("novelpack.yaml").Return(spec, nil)
	f.expectHealthyEnvironment(spec)

	require.NoError(t, f.app.EnsureDependencies(context.Background(), "novelpack.yaml"))
}
