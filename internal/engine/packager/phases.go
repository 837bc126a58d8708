package packager

import (
	"context"
	"fmt"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Phase names. Tests and status queries key on these.
const (
	PhaseCheckInterpreter = "checking python environment"
	PhaseDependencies     = "checking dependencies"
	PhaseClean            = "cleaning workspace"
	PhaseBuild            = "building executable"
	PhaseVerify           = "verifying artifact"
	PhaseStage            = "creating portable package"
)

func (p *Packager) checkInterpreterPhase(state *runState) Phase {
	return Phase{
		Name: PhaseCheckInterpreter,
		Run: func(ctx context.Context, _ ports.Vertex) error {
			python, err := p.interpreter.Locate(ctx)
			if err != nil {
				return err
			}

			version, err := p.interpreter.Version(ctx, python)
			if err != nil {
				return err
			}
			if !version.AtLeast(state.spec.MinPython) {
				wrapped := zerr.With(domain.ErrInterpreterTooOld, "version", version.String())
				return zerr.With(wrapped, "minimum", state.spec.MinPython.String())
			}

			state.python = python
			p.logger.Success("Python " + version.String())
			return nil
		},
	}
}

func (p *Packager) dependenciesPhase(state *runState) Phase {
	return Phase{
		Name: PhaseDependencies,
		Run: func(ctx context.Context, _ ports.Vertex) error {
			for _, dep := range state.spec.Dependencies {
				if err := p.interpreter.ProbeImport(ctx, state.python, dep.ImportName); err == nil {
					p.logger.Success(dep.PipName + " already installed")
					continue
				}

				p.logger.Warn("installing " + dep.PipName)
				if err := p.interpreter.Install(ctx, state.python, dep.PipName); err != nil {
					return err
				}
				p.logger.Success(dep.PipName + " installed")
			}
			return nil
		},
	}
}

func (p *Packager) cleanPhase(state *runState) Phase {
	return Phase{
		Name: PhaseClean,
		Run: func(_ context.Context, _ ports.Vertex) error {
			return p.cleaner.Clean(state.spec)
		},
	}
}

func (p *Packager) buildPhase(state *runState) Phase {
	return Phase{
		Name: PhaseBuild,
		Run: func(ctx context.Context, v ports.Vertex) error {
			p.logger.Info("this may take a few minutes")
			return p.builder.Build(ctx, state.spec, v.Stdout(), v.Stderr())
		},
	}
}

func (p *Packager) verifyPhase(state *runState) Phase {
	return Phase{
		Name: PhaseVerify,
		Run: func(_ context.Context, _ ports.Vertex) error {
			report, err := p.verifier.Verify(state.spec)
			if err != nil {
				return err
			}
			state.report = report
			p.logger.Success(fmt.Sprintf("%s (%s)", report.BinaryPath, report.HumanSize()))
			return nil
		},
	}
}

func (p *Packager) stagePhase(state *runState) Phase {
	return Phase{
		Name: PhaseStage,
		Run: func(_ context.Context, _ ports.Vertex) error {
			return p.stager.Stage(state.spec, state.report)
		},
	}
}
