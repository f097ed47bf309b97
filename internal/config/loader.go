package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load loads the main project configuration from dir/sallie.yaml.
// A missing file yields the default configuration.
func Load(dir string) (*Config, error) {
	configFile := filepath.Join(dir, "sallie.yaml")

	content, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Interpolate environment variables
	content = []byte(interpolateEnv(string(content)))

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// interpolateEnv replaces ${env.VAR} and ${VAR} with environment values
func interpolateEnv(content string) string {
	// Match ${env.VAR} pattern
	envPattern := regexp.MustCompile(`\$\{env\.([^}]+)\}`)
	content = envPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := envPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // keep original if not found
	})

	// Match ${VAR} pattern
	varPattern := regexp.MustCompile(`\$\{([^}]+)\}`)
	content = varPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := varPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return content
}

func defaultConfig() *Config {
	return &Config{
		Name:    "sallie",
		Version: "1.0",
		Memory: MemoryConfig{
			Driver: "sqlite",
			Path:   ".sallie/memory.db",
		},
		Repo: RepoConfig{
			Driver: "sqlite",
			Path:   ".sallie/repo.db",
		},
		Prefs: PrefsConfig{
			Path: ".sallie/prefs.json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = "sallie"
	}
	if cfg.Version == "" {
		cfg.Version = "1.0"
	}
	if cfg.Memory.Driver == "" {
		cfg.Memory.Driver = "sqlite"
	}
	if cfg.Memory.Path == "" {
		cfg.Memory.Path = ".sallie/memory.db"
	}
	if cfg.Repo.Driver == "" {
		cfg.Repo.Driver = "sqlite"
	}
	if cfg.Repo.Path == "" {
		cfg.Repo.Path = ".sallie/repo.db"
	}
	if cfg.Prefs.Path == "" {
		cfg.Prefs.Path = ".sallie/prefs.json"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
