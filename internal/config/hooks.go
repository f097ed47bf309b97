package config

import (
	"github.com/sallie-oss/sallie/internal/event"
)

// BuildBus constructs an event bus from the hooks configuration.
// Returns nil when hooks are disabled; a nil bus is a safe no-op for
// all emitters.
func BuildBus(cfg *Config, logger event.Logger) *event.Bus {
	if !cfg.Hooks.Enabled {
		return nil
	}

	bus := event.NewBus(logger)
	for _, hc := range cfg.Hooks.Hooks {
		events := make([]event.EventType, 0, len(hc.Events))
		for _, e := range hc.Events {
			events = append(events, event.EventType(e))
		}

		switch hc.Type {
		case "webhook":
			bus.Register(event.NewWebhookHook(hc.Name, hc.URL, events, hc.Blocking))
		case "log":
			bus.Register(event.NewLogHook(hc.Name, events, logger, hc.Level))
		}
	}
	return bus
}
