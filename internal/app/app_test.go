package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/todo/internal/adapters/jsonl"
	"go.trai.ch/todo/internal/app"
	"go.trai.ch/todo/internal/core/domain"
	"go.trai.ch/todo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	milkID = "3f2a9c1e-0000-4000-8000-000000000001"
	momID  = "3f2b0000-0000-4000-8000-000000000002"
	taxID  = "c0ffee00-0000-4000-8000-000000000003"
)

const seed = `{"name":"buy milk","completed":false,"task_id":"` + milkID + `"}
{"name":"call mom","completed":true,"task_id":"` + momID + `"}
{"name":"file taxes","completed":false,"task_id":"` + taxID + `"}
`

type fixture struct {
	app    *app.App
	loader *mocks.MockConfigLoader
	out    *bytes.Buffer
	path   string
}

// newFixture isolates the environment and returns an App over a data file in a temp dir.
func newFixture(t *testing.T, cfg domain.Config) *fixture {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(domain.DataFileEnv, "")
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil).AnyTimes()
	log := mocks.NewMockLogger(ctrl)

	out := &bytes.Buffer{}
	a := app.New(loader, jsonl.NewRepository(), log).WithOutput(out)

	return &fixture{
		app:    a,
		loader: loader,
		out:    out,
		path:   filepath.Join(home, "data", "tasks.jsonl"),
	}
}

func (f *fixture) opts() app.Options {
	return app.Options{DataFile: f.path}
}

func (f *fixture) seed(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(f.path), domain.DirPerm))
	require.NoError(t, os.WriteFile(f.path, []byte(content), domain.FilePerm))
}

func (f *fixture) file(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	return string(data)
}

func TestApp_Init(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	ctx := context.Background()

	require.NoError(t, f.app.Init(ctx, f.opts()))
	assert.Equal(t, "✓ created "+f.path+"\n", f.out.String())
	assert.Empty(t, f.file(t))

	f.out.Reset()
	require.NoError(t, f.app.Init(ctx, f.opts()))
	assert.Equal(t, "✓ using existing "+f.path+"\n", f.out.String())
}

func TestApp_MissingDataFile(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "add", run: func() error { return f.app.Add(ctx, f.opts(), "x") }},
		{name: "list", run: func() error { return f.app.List(ctx, f.opts(), "") }},
		{name: "done", run: func() error { return f.app.Complete(ctx, f.opts(), "3f2a", true) }},
		{name: "rename", run: func() error { return f.app.Rename(ctx, f.opts(), "3f2a", "y") }},
		{name: "remove", run: func() error { return f.app.Remove(ctx, f.opts(), "3f2a") }},
		{name: "clear", run: func() error { return f.app.ClearCompleted(ctx, f.opts()) }},
		{name: "interactive", run: func() error { return f.app.Interactive(ctx, f.opts()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDataFileNotFound), "got %v", err)
		})
	}
}

func TestApp_AddAndList(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	ctx := context.Background()
	require.NoError(t, f.app.Init(ctx, f.opts()))

	require.NoError(t, f.app.Add(ctx, f.opts(), "  buy milk "))
	require.NoError(t, f.app.Add(ctx, f.opts(), "call mom"))
	assert.Contains(t, f.out.String(), "✓ added ")
	assert.Contains(t, f.out.String(), " buy milk\n")

	f.out.Reset()
	require.NoError(t, f.app.List(ctx, f.opts(), ""))

	out := f.out.String()
	assert.Contains(t, out, "  buy milk\n")
	assert.Contains(t, out, "  call mom\n")
	assert.True(t, strings.HasSuffix(out, "\n2 active item(s) left\n"), "got %q", out)
	assert.Equal(t, 2, strings.Count(f.file(t), "\n"))
}

func TestApp_AddRejectsBlankName(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.seed(t, "")

	err := f.app.Add(context.Background(), f.opts(), "   ")

	assert.True(t, errors.Is(err, domain.ErrEmptyTaskName))
	assert.Empty(t, f.file(t))
}

func TestApp_CompleteByPrefix(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		completed bool
		wantErr   error
		wantOut   string
	}{
		{name: "unique prefix", ref: "3f2a", completed: true, wantOut: "✓ completed 3f2a9c1e buy milk\n"},
		{name: "upper case prefix", ref: "C0FFEE", completed: true, wantOut: "✓ completed c0ffee00 file taxes\n"},
		{name: "full id", ref: momID, completed: false, wantOut: "✓ reopened 3f2b0000 call mom\n"},
		{name: "ambiguous prefix", ref: "3f2", completed: true, wantErr: domain.ErrAmbiguousTaskID},
		{name: "unknown prefix", ref: "ffff", completed: true, wantErr: domain.ErrTaskNotFound},
		{name: "blank ref", ref: " ", completed: true, wantErr: domain.ErrTaskNotFound},
		{name: "unknown full id", ref: "00000000-0000-4000-8000-000000000000", completed: true, wantErr: domain.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, domain.DefaultConfig())
			f.seed(t, seed)

			err := f.app.Complete(context.Background(), f.opts(), tt.ref, tt.completed)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, seed, f.file(t))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, f.out.String())
		})
	}
}

func TestApp_Rename(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.seed(t, seed)
	ctx := context.Background()

	require.NoError(t, f.app.Rename(ctx, f.opts(), "3f2a", "  buy oat milk "))
	assert.Equal(t, "✓ renamed 3f2a9c1e buy oat milk\n", f.out.String())
	assert.Contains(t, f.file(t), `"name":"buy oat milk"`)

	err := f.app.Rename(ctx, f.opts(), "3f2a", " ")
	assert.True(t, errors.Is(err, domain.ErrEmptyTaskName))
}

func TestApp_Remove(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.seed(t, seed)

	require.NoError(t, f.app.Remove(context.Background(), f.opts(), "c0ff"))

	assert.Equal(t, "✓ removed c0ffee00 file taxes\n", f.out.String())
	assert.NotContains(t, f.file(t), taxID)
}

func TestApp_ClearCompleted(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.seed(t, seed)

	require.NoError(t, f.app.ClearCompleted(context.Background(), f.opts()))

	assert.Equal(t, "✓ cleared 1 completed task(s)\n", f.out.String())
	assert.NotContains(t, f.file(t), momID)
	assert.Equal(t, 2, strings.Count(f.file(t), "\n"))
}

func TestApp_ListFilters(t *testing.T) {
	tests := []struct {
		name     string
		cfg      domain.Config
		filter   string
		contains []string
		excludes []string
		wantErr  error
	}{
		{name: "default all", cfg: domain.DefaultConfig(), contains: []string{"buy milk", "call mom", "file taxes"}},
		{name: "active flag", cfg: domain.DefaultConfig(), filter: "active", contains: []string{"buy milk", "file taxes"}, excludes: []string{"call mom"}},
		{name: "completed flag", cfg: domain.DefaultConfig(), filter: "Completed", contains: []string{"call mom"}, excludes: []string{"buy milk"}},
		{
			name:     "configured default",
			cfg:      domain.Config{DefaultFilter: domain.FilterCompleted, LogFormat: domain.LogFormatPretty},
			contains: []string{"call mom"},
			excludes: []string{"file taxes"},
		},
		{
			name:     "flag overrides configured default",
			cfg:      domain.Config{DefaultFilter: domain.FilterCompleted, LogFormat: domain.LogFormatPretty},
			filter:   "all",
			contains: []string{"call mom", "file taxes"},
		},
		{name: "invalid filter", cfg: domain.DefaultConfig(), filter: "done", wantErr: domain.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.cfg)
			f.seed(t, seed)

			err := f.app.List(context.Background(), f.opts(), tt.filter)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)

			out := f.out.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
			assert.Contains(t, out, "2 active item(s) left")
		})
	}
}

func TestApp_DataFilePrecedence(t *testing.T) {
	ctx := context.Background()

	t.Run("flag over env over config", func(t *testing.T) {
		dir := t.TempDir()
		cfg := domain.DefaultConfig()
		cfg.DataFile = filepath.Join(dir, "config.jsonl")
		f := newFixture(t, cfg)
		t.Setenv(domain.DataFileEnv, filepath.Join(dir, "env.jsonl"))

		require.NoError(t, f.app.Init(ctx, app.Options{DataFile: filepath.Join(dir, "flag.jsonl")}))
		assert.FileExists(t, filepath.Join(dir, "flag.jsonl"))
		assert.NoFileExists(t, filepath.Join(dir, "env.jsonl"))

		require.NoError(t, f.app.Init(ctx, app.Options{}))
		assert.FileExists(t, filepath.Join(dir, "env.jsonl"))
		assert.NoFileExists(t, filepath.Join(dir, "config.jsonl"))

		t.Setenv(domain.DataFileEnv, "")
		require.NoError(t, f.app.Init(ctx, app.Options{}))
		assert.FileExists(t, filepath.Join(dir, "config.jsonl"))
	})

	t.Run("default under home", func(t *testing.T) {
		f := newFixture(t, domain.DefaultConfig())

		require.NoError(t, f.app.Init(ctx, app.Options{}))

		assert.FileExists(t, filepath.Join(os.Getenv("HOME"), domain.TodoDirName, domain.DataFileName))
	})

	t.Run("tilde in flag", func(t *testing.T) {
		f := newFixture(t, domain.DefaultConfig())

		require.NoError(t, f.app.Init(ctx, app.Options{DataFile: "~/lists/work.jsonl"}))

		assert.FileExists(t, filepath.Join(os.Getenv("HOME"), "lists", "work.jsonl"))
	})
}

func TestApp_ConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(domain.DataFileEnv, filepath.Join(home, "tasks.jsonl"))
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	repo := mocks.NewMockTaskRepository(ctrl)

	gomock.InOrder(
		loader.EXPECT().Load(filepath.Join(home, "custom.yaml")).Return(domain.DefaultConfig(), nil),
		loader.EXPECT().Load(filepath.Join(home, ".config", "todo", "config.yaml")).Return(domain.DefaultConfig(), nil),
	)
	repo.EXPECT().Init(filepath.Join(home, "tasks.jsonl")).Return(true, nil).Times(2)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("config file " + filepath.Join(home, "custom.yaml") + " not found, using defaults")

	a := app.New(loader, repo, log).WithOutput(io.Discard)

	require.NoError(t, a.Init(context.Background(), app.Options{ConfigPath: "~/custom.yaml"}))
	require.NoError(t, a.Init(context.Background(), app.Options{}))
}

func TestApp_ConfigErrors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), domain.ErrConfigParseFailed)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("colour: blue\n"), domain.FilePerm))

	a := app.New(loader, mocks.NewMockTaskRepository(ctrl), mocks.NewMockLogger(ctrl))

	err := a.List(context.Background(), app.Options{ConfigPath: cfgPath}, "")
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestApp_InvalidLogFormat(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.seed(t, seed)

	err := f.app.List(context.Background(), app.Options{DataFile: f.path, LogFormat: "xml"}, "")

	assert.True(t, errors.Is(err, domain.ErrInvalidLogFormat), "got %v", err)
}

func TestApp_SaveFailure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	repo := mocks.NewMockTaskRepository(ctrl)

	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultConfig(), nil)
	repo.EXPECT().Load("/data/tasks.jsonl").Return([]domain.Task{}, nil)
	repo.EXPECT().SaveAll("/data/tasks.jsonl", gomock.Len(1)).Return(domain.ErrStoreWriteFailed)

	out := &bytes.Buffer{}
	a := app.New(loader, repo, mocks.NewMockLogger(ctrl)).WithOutput(out)

	err := a.Add(context.Background(), app.Options{DataFile: "/data/tasks.jsonl"}, "buy milk")

	assert.True(t, errors.Is(err, domain.ErrStoreWriteFailed))
	assert.Empty(t, out.String())
}

func TestApp_Interactive(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.seed(t, seed)
	f.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	err := f.app.Auto(context.Background(), app.Options{DataFile: f.path, OutputMode: "tui"})

	require.NoError(t, err)
	assert.Equal(t, seed, f.file(t))
}

func TestApp_AutoWithoutTerminalLists(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.seed(t, seed)

	require.NoError(t, f.app.Auto(context.Background(), f.opts()))

	assert.Contains(t, f.out.String(), "2 active item(s) left")
}

func TestApp_AutoRejectsUnknownOutputMode(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.seed(t, seed)

	opts := f.opts()
	opts.OutputMode = "fancy"
	err := f.app.Auto(context.Background(), opts)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidOutputMode), "expected ErrInvalidOutputMode, got %v", err)
	assert.Empty(t, f.out.String())
}
