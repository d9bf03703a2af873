package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/javelin/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			// Progrock's tape renders to a terminal; in CI or when piped
			// there is nothing to render onto.
			if os.Getenv("CI") != "" {
				return NewNoOp(), nil
			}
			return New(), nil
		},
	})
}
