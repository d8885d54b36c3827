// Package jsonl implements the task repository as a JSON-lines file.
package jsonl

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TaskRepository = (*Repository)(nil)

// Repository implements ports.TaskRepository with one JSON object per line.
// Writes truncate and rewrite the file in place; there is no locking and no
// atomic rename, so a crash mid-write can leave a truncated file.
type Repository struct {
	newID func() uuid.UUID
}

// NewRepository creates a new Repository.
func NewRepository() *Repository {
	return &Repository{newID: uuid.New}
}

// record is the persisted form of a task.
// Field order matches the written key order: name, completed, task_id.
type record struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	TaskID    string `json:"task_id"`
}

// inbound accepts "id" as an alias of "task_id" and detects a missing name.
type inbound struct {
	Name      *string  `json:"name"`
	Completed nullable `json:"completed"`
	TaskID    string   `json:"task_id"`
	ID        string   `json:"id"`
}

// nullable distinguishes an explicit null from an absent key.
type nullable struct {
	null  bool
	value bool
}

func (n *nullable) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.null = true
		return nil
	}
	return json.Unmarshal(data, &n.value)
}

// Load reads every non-blank line of the file at path as a task record.
func (r *Repository) Load(path string) ([]domain.Task, error) {
	//nolint:gosec // Path is provided by the user's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDataFileNotFound, "cannot load tasks"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", path)
	}

	var tasks []domain.Task
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		task, err := r.decode(line)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "line", i+1)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *Repository) decode(line []byte) (domain.Task, error) {
	if !utf8.Valid(line) {
		return domain.Task{}, zerr.Wrap(domain.ErrCorruptData, "record is not valid UTF-8")
	}

	var in inbound
	if err := json.Unmarshal(line, &in); err != nil {
		return domain.Task{}, zerr.Wrap(domain.ErrCorruptData, err.Error())
	}
	if in.Name == nil {
		return domain.Task{}, zerr.Wrap(domain.ErrCorruptData, "record has no name")
	}
	if in.Completed.null {
		return domain.Task{}, zerr.Wrap(domain.ErrCorruptData, "completed is null")
	}

	raw := in.TaskID
	if raw == "" {
		raw = in.ID
	}

	id := r.newID()
	if raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domain.Task{}, zerr.With(zerr.Wrap(domain.ErrCorruptData, "invalid task id"), "task_id", raw)
		}
		id = parsed
	}

	task := domain.NewTask(id, *in.Name)
	task.Completed = in.Completed.value
	return task, nil
}

// SaveAll overwrites the file at path with one record per task, each followed by a newline.
func (r *Repository) SaveAll(path string, tasks []domain.Task) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	for _, t := range tasks {
		rec := record{Name: t.Name, Completed: t.Completed, TaskID: t.ID.String()}
		if err := enc.Encode(rec); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrRecordMarshalFailed, err.Error()), "task_id", rec.TaskID)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", path)
	}

	return nil
}

// Init creates an empty data file and its parent directory if the file does not exist.
func (r *Repository) Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", path)
	}

	//nolint:gosec // Path is provided by the user's configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", path)
	}

	return true, nil
}
