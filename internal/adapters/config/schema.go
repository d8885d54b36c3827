package config

// File represents the structure of the config.yaml file.
type File struct {
	DataFile      string `yaml:"data_file"`
	DefaultFilter string `yaml:"default_filter"`
	LogFormat     string `yaml:"log_format"`
}
