package config

// Definition holds the overall configuration for the application.
// Each field maps to a configuration key defined in external sources (like YAML files)
type Definition struct {
	// Debug toggles debug mode; when true, the application outputs extra logs.
	Debug bool `mapstructure:"debug"`

	// LogFormat defines the output format for log messages.
	// Available options: "json", "text"
	LogFormat string `mapstructure:"logFormat"`

	// Paths holds filesystem path configurations.
	Paths *PathsDef `mapstructure:"paths"`
}

// PathsDef represents the file system paths configuration.
type PathsDef struct {
	DataDir string `mapstructure:"dataDir"`
}
