package tracker

import (
	"math"

	"github.com/crossfeed/onboard/internal/catalog"
	"github.com/crossfeed/onboard/internal/store"
)

// Status is the derived per-step status.
type Status string

const (
	// StatusPending means the step is not completed and not the next one up
	StatusPending Status = "pending"
	// StatusCurrent marks the first incomplete step in catalog order.
	// At most one step is ever current.
	StatusCurrent Status = "current"
	// StatusCompleted means the step id is recorded in the tracker state
	StatusCompleted Status = "completed"
)

// StepView joins a catalog step with its derived status.
type StepView struct {
	Step   catalog.StepDefinition `json:"step"`
	Status Status                 `json:"status"`
}

// Normalize drops completed ids that no longer exist in the catalog and
// deduplicates the rest. Stored state can drift when the catalog changes
// between releases; unknown ids are tolerated, not trusted.
func Normalize(st store.State, steps []catalog.StepDefinition) store.State {
	known := make(map[string]bool, len(steps))
	for _, s := range steps {
		known[s.ID] = true
	}

	out := store.State{Skipped: st.Skipped, CompletedSteps: []string{}}
	seen := make(map[string]bool, len(st.CompletedSteps))
	for _, id := range st.CompletedSteps {
		if known[id] && !seen[id] {
			out.CompletedSteps = append(out.CompletedSteps, id)
			seen[id] = true
		}
	}
	return out
}

// DeriveSteps computes the per-step view in catalog order.
func DeriveSteps(st store.State, steps []catalog.StepDefinition) []StepView {
	views := make([]StepView, len(steps))
	claimed := false
	for i, s := range steps {
		status := StatusPending
		switch {
		case st.Completed(s.ID):
			status = StatusCompleted
		case !claimed:
			status = StatusCurrent
			claimed = true
		}
		views[i] = StepView{Step: s, Status: status}
	}
	return views
}

// CurrentStep returns the first step in catalog order not yet completed, or
// nil if every step is completed or the catalog is empty.
func CurrentStep(st store.State, steps []catalog.StepDefinition) *catalog.StepDefinition {
	for _, s := range steps {
		if !st.Completed(s.ID) {
			step := s
			return &step
		}
	}
	return nil
}

// Progress returns the completion percentage, 0-100, rounded to the nearest
// integer. An empty catalog counts as fully complete.
func Progress(st store.State, steps []catalog.StepDefinition) int {
	if len(steps) == 0 {
		return 100
	}
	done := 0
	for _, s := range steps {
		if st.Completed(s.ID) {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(steps))))
}

// IsComplete reports whether onboarding is finished: either the user skipped
// it, or every catalog step is completed.
func IsComplete(st store.State, steps []catalog.StepDefinition) bool {
	if st.Skipped {
		return true
	}
	for _, s := range steps {
		if !st.Completed(s.ID) {
			return false
		}
	}
	return true
}
