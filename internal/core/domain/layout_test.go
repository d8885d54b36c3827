package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/todo/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultDataPath",
			got:      domain.DefaultDataPath(),
			expected: filepath.Join(home, ".todo", "tasks.jsonl"),
		},
		{
			name:     "DefaultConfigPath",
			got:      domain.DefaultConfigPath(),
			expected: filepath.Join(home, "cfg", "todo", "config.yaml"),
		},
		{
			name:     "ExpandHome prefix",
			got:      domain.ExpandHome("~/notes/tasks.jsonl"),
			expected: filepath.Join(home, "notes", "tasks.jsonl"),
		},
		{
			name:     "ExpandHome bare",
			got:      domain.ExpandHome("~"),
			expected: home,
		},
		{
			name:     "ExpandHome untouched",
			got:      domain.ExpandHome("/tmp/tasks.jsonl"),
			expected: "/tmp/tasks.jsonl",
		},
		{
			name:     "ExpandHome other user",
			got:      domain.ExpandHome("~bob/tasks.jsonl"),
			expected: "~bob/tasks.jsonl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, domain.FilterAll, cfg.DefaultFilter)
	assert.Equal(t, domain.LogFormatPretty, cfg.LogFormat)
	assert.Empty(t, cfg.DataFile)
}
