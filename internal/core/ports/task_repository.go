// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/todo/internal/core/domain"

// TaskRepository reads and rewrites the full persisted task set.
//
//go:generate mockgen -source=task_repository.go -destination=mocks/mock_task_repository.go -package=mocks
type TaskRepository interface {
	// Load reads every task from the file at path.
	// It fails without returning any tasks if a single record is invalid.
	Load(path string) ([]domain.Task, error)

	// SaveAll overwrites the file at path with one record per task, in order.
	SaveAll(path string, tasks []domain.Task) error

	// Init creates an empty file at path if none exists.
	// It reports whether a file was created.
	Init(path string) (bool, error)
}
