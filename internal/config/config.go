package config

// Config holds everything a single projector invocation needs.
// Paths are kept exactly as supplied; no normalization is applied.
type Config struct {
	// Operation is the single command requested by the positional arguments.
	Operation Operation `mapstructure:"-"`

	// StorePath is the JSON file holding all path-scoped values.
	StorePath string `mapstructure:"config" validate:"required"`

	// WorkingDir is the directory lookups and mutations are scoped to.
	WorkingDir string `mapstructure:"pwd" validate:"required"`

	// LogLevel is the minimum slog level written to stderr.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Options carries the raw, unresolved input gathered by the CLI layer.
// Empty strings mean "not supplied".
type Options struct {
	Args       []string
	ConfigPath string
	WorkingDir string
	LogLevel   string
}
