package domain

import (
	"os"
	"path/filepath"
)

const (
	// TodoDirName is the name of the directory under $HOME holding the data file.
	TodoDirName = ".todo"

	// DataFileName is the name of the default data file.
	DataFileName = "tasks.jsonl"

	// ConfigDirName is the name of the directory under the user config dir.
	ConfigDirName = "todo"

	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.yaml"

	// DataFileEnv names the environment variable overriding the data file path.
	DataFileEnv = "TODO_FILE"

	// ShortIDLength is the number of id characters shown in listings.
	ShortIDLength = 8

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for the data file (rw-------).
	FilePerm = 0o600
)

// DefaultDataPath returns $HOME/.todo/tasks.jsonl.
// It falls back to a relative .todo/tasks.jsonl when the home directory is unknown.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(TodoDirName, DataFileName)
	}
	return filepath.Join(home, TodoDirName, DataFileName)
}

// DefaultConfigPath returns the config file path under the user config directory.
// It returns an empty string when that directory cannot be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
