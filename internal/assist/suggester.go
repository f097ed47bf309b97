package assist

import (
	"context"

	"github.com/sallie-oss/sallie/internal/memory"
	"github.com/sallie-oss/sallie/internal/prefs"
	"github.com/sallie-oss/sallie/internal/repo"
)

// Suggester is a rule-based ProactiveAssistant built on the memory store
// and the task repository. It respects the proactive_suggestions
// preference and stays quiet when it is disabled.
type Suggester struct {
	store *memory.Store
	tasks *repo.Manager
	prefs *prefs.Preferences
}

// NewSuggester creates a suggester over the given collaborators. tasks
// and prefs may be nil; the corresponding rules are skipped.
func NewSuggester(store *memory.Store, tasks *repo.Manager, p *prefs.Preferences) *Suggester {
	return &Suggester{store: store, tasks: tasks, prefs: p}
}

// Suggest implements ProactiveAssistant.
func (s *Suggester) Suggest(ctx context.Context) ([]Suggestion, error) {
	if s.prefs != nil && !s.prefs.ProactiveSuggestions {
		return nil, nil
	}

	var suggestions []Suggestion

	if mood, err := s.store.Lookup("session", "mood"); err == nil {
		switch mood {
		case "tired":
			suggestions = append(suggestions, Suggestion{
				Text:   "You seem tired — want me to hold non-urgent notifications?",
				Reason: "session mood is tired",
			})
		case "stressed":
			suggestions = append(suggestions, Suggestion{
				Text:   "Shall I postpone today's low-priority tasks?",
				Reason: "session mood is stressed",
			})
		}
	}

	if s.tasks != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tasks, err := s.tasks.ListTasks(50)
		if err != nil {
			return nil, err
		}
		pending := 0
		for _, t := range tasks {
			if !t.IsDone() {
				pending++
			}
		}
		if pending >= 5 {
			suggestions = append(suggestions, Suggestion{
				Text:   "You have several open tasks — want a quick review?",
				Reason: "5 or more pending tasks",
			})
		}
	}

	return suggestions, nil
}
