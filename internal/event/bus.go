package event

import (
	"fmt"
	"sync"
)

// Bus dispatches lifecycle events to registered hooks.
//
// Blocking hooks run sequentially in registration order and their first
// error is returned to the emitter; non-blocking hooks run in goroutines
// and failures are logged as warnings. A nil Bus is safe to use — all
// methods are no-ops.
type Bus struct {
	mu     sync.RWMutex
	hooks  []Hook
	logger Logger
}

// Logger is a minimal logging interface so the bus doesn't depend on telemetry.
type Logger interface {
	Warn(msg string, keyvals ...interface{})
}

// NewBus creates an event bus. Pass nil logger for silent operation.
func NewBus(logger Logger) *Bus {
	return &Bus{logger: logger}
}

// Register adds a hook to the bus.
func (b *Bus) Register(h Hook) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks = append(b.hooks, h)
}

// Emit dispatches an event to all matching hooks and returns the first
// error from a blocking hook, if any.
func (b *Bus) Emit(ev Event) error {
	if b == nil {
		return nil
	}
	// Copy hooks slice to avoid holding the lock during execution.
	b.mu.RLock()
	hooks := make([]Hook, len(b.hooks))
	copy(hooks, b.hooks)
	b.mu.RUnlock()

	for _, h := range hooks {
		if !h.Matches(ev.Type) {
			continue
		}

		if h.IsBlocking() {
			if err := h.Handle(ev); err != nil {
				return fmt.Errorf("blocking hook %s failed: %w", h.Name(), err)
			}
			continue
		}

		go func(hook Hook) {
			defer func() {
				if r := recover(); r != nil && b.logger != nil {
					b.logger.Warn("Non-blocking hook panicked",
						"hook", hook.Name(),
						"event", string(ev.Type),
						"panic", r,
					)
				}
			}()
			if err := hook.Handle(ev); err != nil && b.logger != nil {
				b.logger.Warn("Non-blocking hook failed",
					"hook", hook.Name(),
					"event", string(ev.Type),
					"error", err,
				)
			}
		}(h)
	}

	return nil
}
