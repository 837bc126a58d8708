package pyinstaller

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/novelreader/novelpack/internal/adapters/shell"
	"github.com/novelreader/novelpack/internal/core/ports"
)

const NodeID graft.ID = "adapter.builder"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner), nil
		},
	})
}
