package domain

// Log formats accepted by the logger.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Config holds the resolved application configuration.
type Config struct {
	// DataFile is the path of the persisted task file.
	DataFile string
	// DefaultFilter is the filter used when none is given.
	DefaultFilter Filter
	// LogFormat is either LogFormatPretty or LogFormatJSON.
	LogFormat string
}

// DefaultConfig returns the configuration used when no config file exists.
// DataFile is left empty and resolved by the caller.
func DefaultConfig() Config {
	return Config{
		DefaultFilter: FilterAll,
		LogFormat:     LogFormatPretty,
	}
}
