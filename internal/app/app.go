// Package app implements the application layer for todo.
package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.trai.ch/todo/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/todo/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/todo/internal/adapters/linear"   //nolint:depguard // Wired in app layer
	"go.trai.ch/todo/internal/adapters/tui"      //nolint:depguard // Wired in app layer
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports"
	"go.trai.ch/todo/internal/engine/store"
	"go.trai.ch/zerr"
)

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	repo         ports.TaskRepository
	logger       ports.Logger
	stdout       io.Writer
	teaOptions   []tea.ProgramOption
}

// Options are the global settings given on the command line.
// Empty fields fall back to the environment, then the config file, then defaults.
type Options struct {
	ConfigPath string
	DataFile   string
	LogFormat  string
	OutputMode string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, repo ports.TaskRepository, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		repo:         repo,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput sets the writer command results are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	if w == nil {
		w = os.Stdout
	}
	a.stdout = w
	return a
}

// Init creates the data file if it does not exist yet.
func (a *App) Init(_ context.Context, opts Options) error {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return err
	}

	created, err := a.repo.Init(cfg.DataFile)
	if err != nil {
		return zerr.Wrap(err, "failed to initialize data file")
	}

	a.renderer().RenderInit(cfg.DataFile, created)
	return nil
}

// Add creates an active task named name.
func (a *App) Add(_ context.Context, opts Options, name string) error {
	name = domain.NormalizeName(name)
	if name == "" {
		return domain.ErrEmptyTaskName
	}

	s, _, err := a.open(opts)
	if err != nil {
		return err
	}

	t, err := s.Create(name)
	if err != nil {
		return zerr.Wrap(err, "failed to add task")
	}

	a.renderer().RenderTask("added", t)
	return nil
}

// Complete marks the task referenced by ref completed or active.
func (a *App) Complete(_ context.Context, opts Options, ref string, completed bool) error {
	s, _, err := a.open(opts)
	if err != nil {
		return err
	}

	id, err := resolveID(s, ref)
	if err != nil {
		return err
	}

	if err := s.SetCompleted(id, completed); err != nil {
		return zerr.Wrap(err, "failed to update task")
	}

	t, _ := s.Get(id)
	verb := "reopened"
	if completed {
		verb = "completed"
	}
	a.renderer().RenderTask(verb, t)
	return nil
}

// Rename changes the name of the task referenced by ref.
func (a *App) Rename(_ context.Context, opts Options, ref, name string) error {
	name = domain.NormalizeName(name)
	if name == "" {
		return domain.ErrEmptyTaskName
	}

	s, _, err := a.open(opts)
	if err != nil {
		return err
	}

	id, err := resolveID(s, ref)
	if err != nil {
		return err
	}

	if err := s.Rename(id, name); err != nil {
		return zerr.Wrap(err, "failed to rename task")
	}

	t, _ := s.Get(id)
	a.renderer().RenderTask("renamed", t)
	return nil
}

// Remove deletes the task referenced by ref.
func (a *App) Remove(_ context.Context, opts Options, ref string) error {
	s, _, err := a.open(opts)
	if err != nil {
		return err
	}

	id, err := resolveID(s, ref)
	if err != nil {
		return err
	}

	t, _ := s.Get(id)
	if err := s.Delete(id); err != nil {
		return zerr.Wrap(err, "failed to remove task")
	}

	a.renderer().RenderTask("removed", t)
	return nil
}

// ClearCompleted removes every completed task.
func (a *App) ClearCompleted(_ context.Context, opts Options) error {
	s, _, err := a.open(opts)
	if err != nil {
		return err
	}

	n, err := s.ClearCompleted()
	if err != nil {
		return zerr.Wrap(err, "failed to clear completed tasks")
	}

	a.renderer().RenderCleared(n)
	return nil
}

// List prints the tasks matching filterName.
// An empty filterName selects the configured default filter.
func (a *App) List(_ context.Context, opts Options, filterName string) error {
	s, cfg, err := a.open(opts)
	if err != nil {
		return err
	}

	filter := cfg.DefaultFilter
	if filterName != "" {
		filter, err = domain.ParseFilter(filterName)
		if err != nil {
			return err
		}
	}

	a.renderer().RenderView(domain.Project(s.All(), filter))
	return nil
}

// Interactive runs the interactive task list until the user quits.
func (a *App) Interactive(ctx context.Context, opts Options) error {
	s, cfg, err := a.open(opts)
	if err != nil {
		return err
	}

	model := tui.NewModel(s, cfg.DefaultFilter, a.stdout)
	if err := tui.Run(ctx, model, a.teaOptions...); err != nil {
		return zerr.Wrap(domain.ErrInteractiveFailed, err.Error())
	}
	return nil
}

// Auto runs the interactive task list on a terminal and prints the list otherwise.
func (a *App) Auto(ctx context.Context, opts Options) error {
	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}
	mode := detector.ResolveMode(detector.DetectEnvironment(), requested)
	if mode == detector.ModeTUI {
		return a.Interactive(ctx, opts)
	}
	return a.List(ctx, opts, "")
}

func (a *App) open(opts Options) (*store.Store, domain.Config, error) {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return nil, cfg, err
	}

	s, err := store.Open(a.repo, cfg.DataFile)
	if err != nil {
		return nil, cfg, zerr.Wrap(err, "failed to load tasks")
	}
	return s, cfg, nil
}

// resolveConfig layers flags over the environment over the config file.
func (a *App) resolveConfig(opts Options) (domain.Config, error) {
	configPath := domain.ExpandHome(opts.ConfigPath)
	if configPath == "" {
		configPath = domain.DefaultConfigPath()
	} else if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("config file " + configPath + " not found, using defaults")
	}

	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return cfg, zerr.Wrap(err, "failed to load configuration")
	}

	if env := os.Getenv(domain.DataFileEnv); env != "" {
		cfg.DataFile = domain.ExpandHome(env)
	}
	if opts.DataFile != "" {
		cfg.DataFile = domain.ExpandHome(opts.DataFile)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = domain.DefaultDataPath()
	}

	if opts.LogFormat != "" {
		format, err := config.ParseLogFormat(opts.LogFormat)
		if err != nil {
			return cfg, err
		}
		cfg.LogFormat = format
	}
	if sw, ok := a.logger.(jsonSwitcher); ok {
		sw.SetJSON(cfg.LogFormat == domain.LogFormatJSON)
	}

	return cfg, nil
}

func (a *App) renderer() *linear.Renderer {
	return linear.NewRenderer(a.stdout)
}

// resolveID maps a full id or a unique id prefix to a task id.
func resolveID(s *store.Store, ref string) (uuid.UUID, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if id, err := uuid.Parse(ref); err == nil {
		if _, ok := s.Get(id); ok {
			return id, nil
		}
	}

	var matches []uuid.UUID
	if ref != "" {
		for _, t := range s.All() {
			if strings.HasPrefix(t.ID.String(), ref) {
				matches = append(matches, t.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return uuid.Nil, zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "no task matches id"), "task_id", ref)
	case 1:
		return matches[0], nil
	default:
		return uuid.Nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrAmbiguousTaskID, "id prefix is not unique"),
			"task_id", ref), "matches", len(matches))
	}
}
