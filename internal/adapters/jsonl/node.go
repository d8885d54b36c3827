package jsonl

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/todo/internal/core/ports"
)

// NodeID is the unique identifier for the task repository Graft node.
const NodeID graft.ID = "adapter.task_repository"

func init() {
	graft.Register(graft.Node[ports.TaskRepository]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TaskRepository, error) {
			return NewRepository(), nil
		},
	})
}
