// Package domain contains the core task model, filters and view projection.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Task is a single to-do item.
// ID is assigned once at creation and never changes.
type Task struct {
	ID        uuid.UUID
	Name      string
	Completed bool
}

// NewTask creates an active task with the given id and a whitespace-stripped name.
func NewTask(id uuid.UUID, name string) Task {
	return Task{
		ID:   id,
		Name: NormalizeName(name),
	}
}

// NormalizeName strips leading and trailing whitespace from a task name.
// It performs no other validation; an empty result is accepted.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ShortID returns the first ShortIDLength characters of the task id.
func (t Task) ShortID() string {
	return t.ID.String()[:ShortIDLength]
}
