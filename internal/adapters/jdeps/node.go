package jdeps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/javelin/internal/adapters/logger"
	"go.trai.ch/javelin/internal/core/ports"
)

// NodeID is the unique identifier for the jdeps analyzer Graft node.
const NodeID graft.ID = "adapter.dependency_analyzer"

func init() {
	graft.Register(graft.Node[ports.DependencyAnalyzer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DependencyAnalyzer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAnalyzer(log), nil
		},
	})
}
