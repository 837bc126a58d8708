package packager

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/novelreader/novelpack/internal/adapters/fs"          //nolint:depguard // Wired in engine wiring
	"github.com/novelreader/novelpack/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"github.com/novelreader/novelpack/internal/adapters/pyinstaller" //nolint:depguard // Wired in engine wiring
	"github.com/novelreader/novelpack/internal/adapters/python"      //nolint:depguard // Wired in engine wiring
	"github.com/novelreader/novelpack/internal/adapters/telemetry"   //nolint:depguard // Wired in engine wiring
	"github.com/novelreader/novelpack/internal/core/ports"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "engine.packager"

func init() {
	graft.Register(graft.Node[*Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			python.NodeID,
			fs.CleanerNodeID,
			pyinstaller.NodeID,
			fs.VerifierNodeID,
			fs.StagerNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Packager, error) {
			interpreter, err := graft.Dep[ports.Interpreter](ctx)
			if err != nil {
				return nil, err
			}

			cleaner, err := graft.Dep[ports.Cleaner](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[ports.Builder](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewPackager(interpreter, cleaner, builder, verifier, stager, tel, log), nil
		},
	})
}
