// Package assist defines the collaborator boundary around the memory
// store: proactive assistance, external API integrations, and context
// ingestion.
package assist

import (
	"context"
	"fmt"

	"github.com/sallie-oss/sallie/internal/memory"
)

// Suggestion is a proactive prompt the assistant may surface to the user.
type Suggestion struct {
	Text   string `json:"text"`
	Reason string `json:"reason,omitempty"`
}

// ProactiveAssistant produces suggestions from the current context.
type ProactiveAssistant interface {
	// Suggest returns suggestions for the user, possibly none.
	Suggest(ctx context.Context) ([]Suggestion, error)
}

// APIIntegration is an external service the assistant can call out to.
type APIIntegration interface {
	// Name identifies the integration (e.g. "calendar", "weather").
	Name() string
	// Fetch retrieves context values from the external service.
	Fetch(ctx context.Context) (map[string]interface{}, error)
}

// ContextLoader batch-populates a memory level from a context mapping.
// Stringification of non-string values happens here, at the collaborator
// boundary — the store only ever sees strings.
type ContextLoader struct {
	store *memory.Store
	level string
}

// NewContextLoader creates a loader writing into the given hierarchy level.
func NewContextLoader(store *memory.Store, level string) *ContextLoader {
	return &ContextLoader{store: store, level: level}
}

// LoadContext inserts one entry per mapping key and returns the number of
// entries stored. The first insert failure aborts the batch.
func (l *ContextLoader) LoadContext(values map[string]interface{}) (int, error) {
	n := 0
	for key, value := range values {
		if err := l.store.Insert(l.level, key, Stringify(value)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// LoadFrom fetches an integration's context and stores it under the
// loader's level, prefixing keys with the integration name.
func (l *ContextLoader) LoadFrom(ctx context.Context, api APIIntegration) (int, error) {
	values, err := api.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch from %s: %w", api.Name(), err)
	}

	prefixed := make(map[string]interface{}, len(values))
	for key, value := range values {
		prefixed[api.Name()+"."+key] = value
	}
	return l.LoadContext(prefixed)
}

// Stringify renders an arbitrary context value for storage.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
