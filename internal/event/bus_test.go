package event

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// testLogger records warn messages.
type testLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *testLogger) Warn(msg string, keyvals ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *testLogger) warns() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warnings)
}

// collectHook records handled events.
type collectHook struct {
	baseHook
	mu       sync.Mutex
	handled  []Event
	handleFn func(Event) error
}

func newCollectHook(name string, events []EventType, blocking bool) *collectHook {
	return &collectHook{
		baseHook: baseHook{name: name, events: events, blocking: blocking},
	}
}

func (h *collectHook) Handle(ev Event) error {
	if h.handleFn != nil {
		return h.handleFn(ev)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, ev)
	return nil
}

func (h *collectHook) events() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	cp := make([]Event, len(h.handled))
	copy(cp, h.handled)
	return cp
}

func TestBus_Emit_BlockingHook(t *testing.T) {
	bus := NewBus(nil)
	hook := newCollectHook("test", []EventType{PermissionGranted}, true)
	bus.Register(hook)

	ev := NewEvent(PermissionGranted, map[string]interface{}{"scope": "calendar"})
	if err := bus.Emit(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	handled := hook.events()
	if len(handled) != 1 {
		t.Fatalf("expected 1 handled event, got %d", len(handled))
	}
	if handled[0].Type != PermissionGranted {
		t.Errorf("expected PermissionGranted, got %s", handled[0].Type)
	}
}

func TestBus_Emit_BlockingHookError(t *testing.T) {
	bus := NewBus(nil)
	hook := newCollectHook("failing", nil, true)
	hook.handleFn = func(ev Event) error {
		return fmt.Errorf("hook exploded")
	}
	bus.Register(hook)

	err := bus.Emit(NewEvent(StateChanged, nil))
	if err == nil {
		t.Fatal("expected blocking hook error to propagate")
	}
}

func TestBus_Emit_NonBlockingHookFailureLogged(t *testing.T) {
	logger := &testLogger{}
	bus := NewBus(logger)

	done := make(chan struct{})
	hook := newCollectHook("async-fail", nil, false)
	hook.handleFn = func(ev Event) error {
		defer close(done)
		return fmt.Errorf("async failure")
	}
	bus.Register(hook)

	if err := bus.Emit(NewEvent(MoodChanged, nil)); err != nil {
		t.Fatalf("non-blocking failure should not surface: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("non-blocking hook never ran")
	}

	// The warn happens after Handle returns; poll briefly.
	deadline := time.Now().Add(time.Second)
	for logger.warns() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if logger.warns() == 0 {
		t.Error("expected a logged warning for the failed hook")
	}
}

func TestBus_Emit_EventTypeFilter(t *testing.T) {
	bus := NewBus(nil)
	hook := newCollectHook("filtered", []EventType{MemoryPersisted}, true)
	bus.Register(hook)

	bus.Emit(NewEvent(MemoryLoaded, nil))
	bus.Emit(NewEvent(MemoryPersisted, nil))

	handled := hook.events()
	if len(handled) != 1 {
		t.Fatalf("expected 1 handled event, got %d", len(handled))
	}
	if handled[0].Type != MemoryPersisted {
		t.Errorf("expected MemoryPersisted, got %s", handled[0].Type)
	}
}

func TestBus_NilSafe(t *testing.T) {
	var bus *Bus

	bus.Register(newCollectHook("noop", nil, true))
	if err := bus.Emit(NewEvent(TaskCreated, nil)); err != nil {
		t.Errorf("nil bus Emit should be a no-op, got %v", err)
	}
}
