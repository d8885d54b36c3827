// Package store implements the in-memory task store backed by a task repository.
package store

import (
	"github.com/google/uuid"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TaskStore = (*Store)(nil)

// Store owns the task set for one data file.
// Every mutation is followed by a full rewrite through the repository.
// It is not safe for concurrent use.
type Store struct {
	repo  ports.TaskRepository
	path  string
	tasks map[uuid.UUID]*domain.Task
	order []uuid.UUID
	newID func() uuid.UUID
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the id source used by Create.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New creates an empty store that persists to path.
func New(repo ports.TaskRepository, path string, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		path:  path,
		tasks: make(map[uuid.UUID]*domain.Task),
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the tasks at path into a new store.
// No store is returned when loading fails.
func Open(repo ports.TaskRepository, path string, opts ...Option) (*Store, error) {
	tasks, err := repo.Load(path)
	if err != nil {
		return nil, err
	}

	s := New(repo, path, opts...)
	for _, t := range tasks {
		s.insert(t)
	}
	return s, nil
}

// Path returns the data file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// insert adds t, or replaces an existing task with the same id in place.
func (s *Store) insert(t domain.Task) {
	if existing, ok := s.tasks[t.ID]; ok {
		*existing = t
		return
	}
	task := t
	s.tasks[t.ID] = &task
	s.order = append(s.order, t.ID)
}

func (s *Store) exists(id uuid.UUID) bool {
	_, ok := s.tasks[id]
	return ok
}

func (s *Store) lookup(id uuid.UUID) (*domain.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "unknown task id"), "task_id", id.String())
	}
	return t, nil
}

// Create adds an active task with a fresh id and the trimmed name.
// The task is kept in memory even if persisting fails.
func (s *Store) Create(name string) (domain.Task, error) {
	id := s.newID()
	for s.exists(id) {
		id = s.newID()
	}

	t := domain.NewTask(id, name)
	s.insert(t)
	return t, s.save()
}

// SetCompleted sets the completion flag of the task with the given id.
func (s *Store) SetCompleted(id uuid.UUID, completed bool) error {
	t, err := s.lookup(id)
	if err != nil {
		return err
	}
	t.Completed = completed
	return s.save()
}

// Rename replaces the name of the task with the given id.
// The new name is trimmed but not otherwise validated.
func (s *Store) Rename(id uuid.UUID, name string) error {
	t, err := s.lookup(id)
	if err != nil {
		return err
	}
	t.Name = domain.NormalizeName(name)
	return s.save()
}

// Delete removes the task with the given id.
func (s *Store) Delete(id uuid.UUID) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.tasks, id)
	s.compact()
	return s.save()
}

// ClearCompleted removes every completed task and returns how many were removed.
// The file is rewritten even when nothing was removed.
func (s *Store) ClearCompleted() (int, error) {
	removed := 0
	for id, t := range s.tasks {
		if t.Completed {
			delete(s.tasks, id)
			removed++
		}
	}
	s.compact()
	return removed, s.save()
}

// compact drops ids from the order that are no longer in the map.
func (s *Store) compact() {
	kept := s.order[:0]
	for _, id := range s.order {
		if _, ok := s.tasks[id]; ok {
			kept = append(kept, id)
		}
	}
	s.order = kept
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id uuid.UUID) (domain.Task, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return *t, true
}

// All returns a copy of every task.
// The order is stable between calls that are not separated by a mutation.
func (s *Store) All() []domain.Task {
	out := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.tasks[id])
	}
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) save() error {
	return s.repo.SaveAll(s.path, s.All())
}
