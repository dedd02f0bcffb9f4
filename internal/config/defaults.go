package config

// Default values applied to unset configuration fields.
const (
	// DefaultLogLevel matches the original batch tooling convention of
	// warnings-only output unless verbosity is requested.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is human-readable console output; a CLI run is read by
	// a person, not a log pipeline, unless configured otherwise.
	DefaultLogFormat = "console"
)

// ApplyDefaults fills every zero-value field in cfg with the tool default.
// Fields already set by the caller are left unchanged so explicit
// configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	// Normalize.AsOfYear zero value means "wall clock"; no default needed.
}
