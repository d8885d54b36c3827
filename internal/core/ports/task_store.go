package ports

import (
	"github.com/google/uuid"
	"go.trai.ch/todo/internal/core/domain"
)

// TaskStore is the mutation surface the UI shell drives.
//
//go:generate mockgen -source=task_store.go -destination=mocks/mock_task_store.go -package=mocks
type TaskStore interface {
	Create(name string) (domain.Task, error)
	SetCompleted(id uuid.UUID, completed bool) error
	Rename(id uuid.UUID, name string) error
	Delete(id uuid.UUID) error
	ClearCompleted() (int, error)
	All() []domain.Task
}
