package config

// Config represents the main project configuration (sallie.yaml)
type Config struct {
	Name    string        `yaml:"name" json:"name"`
	Version string        `yaml:"version" json:"version"`
	Memory  MemoryConfig  `yaml:"memory" json:"memory"`
	Repo    RepoConfig    `yaml:"repo" json:"repo"`
	Prefs   PrefsConfig   `yaml:"prefs" json:"prefs"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Hooks   HooksConfig   `yaml:"hooks" json:"hooks"`
}

// MemoryConfig configures the hierarchical memory store snapshots.
type MemoryConfig struct {
	Driver string `yaml:"driver" json:"driver"` // memory, file, sqlite
	Path   string `yaml:"path" json:"path"`     // snapshot file or database path
}

// RepoConfig configures the task/user repositories.
type RepoConfig struct {
	Driver string `yaml:"driver" json:"driver"` // memory, sqlite
	Path   string `yaml:"path" json:"path"`
}

// PrefsConfig locates the preferences document.
type PrefsConfig struct {
	Path string `yaml:"path" json:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"` // debug, info, warn, error
	File  string `yaml:"file,omitempty" json:"file,omitempty"`
}

// HooksConfig configures lifecycle event hooks.
type HooksConfig struct {
	Enabled bool         `yaml:"enabled" json:"enabled"`
	Hooks   []HookConfig `yaml:"hooks" json:"hooks"`
}

// HookConfig defines a single hook.
type HookConfig struct {
	Name     string   `yaml:"name" json:"name"`
	Type     string   `yaml:"type" json:"type"`     // webhook, log
	Events   []string `yaml:"events" json:"events"` // event types to match
	Blocking bool     `yaml:"blocking" json:"blocking"`
	URL      string   `yaml:"url,omitempty" json:"url,omitempty"`     // for webhook hooks
	Level    string   `yaml:"level,omitempty" json:"level,omitempty"` // for log hooks (debug, info, warn)
}
