package config

import (
	"fmt"
	"strings"

	sallieerr "github.com/sallie-oss/sallie/internal/errors"
)

// validate checks driver names and hook definitions.
func validate(cfg *Config) error {
	var problems []string

	validMemoryDrivers := map[string]bool{
		"memory": true,
		"file":   true,
		"sqlite": true,
		"":       true,
	}
	if !validMemoryDrivers[cfg.Memory.Driver] {
		problems = append(problems, fmt.Sprintf("invalid memory driver: %s", cfg.Memory.Driver))
	}

	validRepoDrivers := map[string]bool{
		"memory": true,
		"sqlite": true,
		"":       true,
	}
	if !validRepoDrivers[cfg.Repo.Driver] {
		problems = append(problems, fmt.Sprintf("invalid repo driver: %s", cfg.Repo.Driver))
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"":      true,
	}
	if !validLevels[cfg.Logging.Level] {
		problems = append(problems, fmt.Sprintf("invalid logging level: %s", cfg.Logging.Level))
	}

	for _, h := range cfg.Hooks.Hooks {
		if h.Name == "" {
			problems = append(problems, "hook name is required")
		}
		switch h.Type {
		case "log":
		case "webhook":
			if h.URL == "" {
				problems = append(problems, fmt.Sprintf("webhook hook %s requires a url", h.Name))
			}
		default:
			problems = append(problems, fmt.Sprintf("invalid hook type: %s", h.Type))
		}
	}

	if len(problems) > 0 {
		return sallieerr.New(sallieerr.CodeConfigInvalid,
			"config validation failed: "+strings.Join(problems, "; "))
	}
	return nil
}
