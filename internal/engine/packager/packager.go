// Package packager implements the sequential packaging pipeline.
package packager

import (
	"context"
	"sync"

	"github.com/novelreader/novelpack/internal/core/domain"
	"github.com/novelreader/novelpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// PhaseStatus represents the status of a pipeline phase.
type PhaseStatus string

const (
	// StatusPending indicates the phase is waiting to be executed.
	StatusPending PhaseStatus = "Pending"
	// StatusRunning indicates the phase is currently executing.
	StatusRunning PhaseStatus = "Running"
	// StatusCompleted indicates the phase has finished successfully.
	StatusCompleted PhaseStatus = "Completed"
	// StatusFailed indicates the phase execution failed.
	StatusFailed PhaseStatus = "Failed"
)

// Phase is one step of the pipeline. Run receives the telemetry vertex
// recording the phase.
type Phase struct {
	Name string
	Run  func(ctx context.Context, v ports.Vertex) error
}

// Packager runs the packaging phases strictly in order with fail-fast abort
// semantics. No phase is retried and there is no rollback.
type Packager struct {
	interpreter ports.Interpreter
	cleaner     ports.Cleaner
	builder     ports.Builder
	verifier    ports.Verifier
	stager      ports.Stager
	telemetry   ports.Telemetry
	logger      ports.Logger

	mu          sync.RWMutex
	phaseStatus map[string]PhaseStatus
}

// NewPackager creates a new Packager.
func NewPackager(
	interpreter ports.Interpreter,
	cleaner ports.Cleaner,
	builder ports.Builder,
	verifier ports.Verifier,
	stager ports.Stager,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Packager {
	return &Packager{
		interpreter: interpreter,
		cleaner:     cleaner,
		builder:     builder,
		verifier:    verifier,
		stager:      stager,
		telemetry:   telemetry,
		logger:      logger,
		phaseStatus: make(map[string]PhaseStatus),
	}
}

// runState carries values produced by one phase and consumed by a later one.
type runState struct {
	spec   *domain.Spec
	python string
	report *domain.Report
}

// Package runs the full pipeline for the spec and returns the build report.
func (p *Packager) Package(ctx context.Context, spec *domain.Spec) (*domain.Report, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	state := &runState{spec: spec}
	phases := []Phase{
		p.checkInterpreterPhase(state),
		p.dependenciesPhase(state),
		p.cleanPhase(state),
		p.buildPhase(state),
		p.verifyPhase(state),
		p.stagePhase(state),
	}

	if err := p.run(ctx, phases); err != nil {
		return nil, err
	}
	return state.report, nil
}

// Clean runs only the workspace cleanup phase.
func (p *Packager) Clean(ctx context.Context, spec *domain.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	state := &runState{spec: spec}
	return p.run(ctx, []Phase{p.cleanPhase(state)})
}

// EnsureDependencies runs only the environment check and dependency
// resolution phases.
func (p *Packager) EnsureDependencies(ctx context.Context, spec *domain.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	state := &runState{spec: spec}
	return p.run(ctx, []Phase{
		p.checkInterpreterPhase(state),
		p.dependenciesPhase(state),
	})
}

// run executes the phases strictly in order. The first failure marks the
// phase Failed and aborts the run.
func (p *Packager) run(ctx context.Context, phases []Phase) error {
	for _, ph := range phases {
		p.setStatus(ph.Name, StatusPending)
	}

	for _, ph := range phases {
		if err := ctx.Err(); err != nil {
			p.setStatus(ph.Name, StatusFailed)
			return zerr.Wrap(err, "packaging canceled")
		}

		p.setStatus(ph.Name, StatusRunning)
		p.logger.Info(ph.Name)

		ctx, vertex := p.telemetry.Record(ctx, ph.Name)
		err := ph.Run(ctx, vertex)
		vertex.Complete(err)

		if err != nil {
			p.setStatus(ph.Name, StatusFailed)
			return zerr.With(err, "phase", ph.Name)
		}
		p.setStatus(ph.Name, StatusCompleted)
	}
	return nil
}

// Status reports the status of the named phase.
func (p *Packager) Status(name string) PhaseStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.phaseStatus[name]
}

func (p *Packager) setStatus(name string, status PhaseStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phaseStatus[name] = status
}
