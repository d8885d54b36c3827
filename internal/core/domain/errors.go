package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskNotFound is returned when an operation references an id absent from the store.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrAmbiguousTaskID is returned when an id prefix matches more than one task.
	ErrAmbiguousTaskID = zerr.New("task id prefix matches more than one task")

	// ErrEmptyTaskName is returned by the shell when the entered name is blank after trimming.
	ErrEmptyTaskName = zerr.New("task name cannot be empty")

	// ErrCorruptData is returned when a line of the data file is not a valid task record.
	ErrCorruptData = zerr.New("corrupt task data")

	// ErrDataFileNotFound is returned when the data file does not exist at load time.
	ErrDataFileNotFound = zerr.New("data file not found, run 'todo init' to create it")

	// ErrStoreReadFailed is returned when the data file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read data file")

	// ErrStoreWriteFailed is returned when the data file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write data file")

	// ErrStoreCreateFailed is returned when the data file or its directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create data file")

	// ErrRecordMarshalFailed is returned when a task cannot be encoded as a record.
	ErrRecordMarshalFailed = zerr.New("failed to encode task record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidFilter is returned when a filter name is not one of all, active or completed.
	ErrInvalidFilter = zerr.New("invalid filter, expected 'all', 'active' or 'completed'")

	// ErrInvalidLogFormat is returned when a log format is not one of pretty or json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrInvalidOutputMode is returned when --output is not one of auto, tui or plain.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'tui' or 'plain'")

	// ErrInteractiveFailed is returned when the interactive shell exits with an error.
	ErrInteractiveFailed = zerr.New("interactive session failed")
)
