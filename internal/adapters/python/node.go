package python

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/novelreader/novelpack/internal/adapters/shell"
	"github.com/novelreader/novelpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.interpreter"

func init() {
	graft.Register(graft.Node[ports.Interpreter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Interpreter, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewInterpreter(runner), nil
		},
	})
}
