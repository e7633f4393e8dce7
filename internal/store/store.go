// Package store persists onboarding tracker state under a single well-known
// key. Stores report failures as errors, but every failure mode is benign by
// contract: callers treat a Load error as "use the default state" and a
// Save/Wipe error as a best-effort write that silently failed. Onboarding
// progress is a convenience record, never a reason to interrupt the user.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StorageKey is the well-known key the tracker record is stored under in
// keyed backends. Bump the suffix if the serialized shape ever changes
// incompatibly.
const StorageKey = "crossfeed.onboarding.v1"

// ErrMalformed indicates the stored value exists but does not parse as a
// valid tracker record. Callers treat it identically to an absent record.
var ErrMalformed = errors.New("malformed tracker record")

// State is the persisted onboarding record. CompletedSteps carries catalog
// step ids; membership is what matters, order is not meaningful. Skipped
// means the user opted out of onboarding entirely and is only cleared by a
// full wipe.
type State struct {
	CompletedSteps []string `json:"completed_steps"`
	Skipped        bool     `json:"skipped"`
}

// Default returns the state used when no record exists or the stored record
// is unusable.
func Default() State {
	return State{CompletedSteps: []string{}}
}

// Completed reports whether the given step id is recorded as completed.
func (s State) Completed(id string) bool {
	for _, c := range s.CompletedSteps {
		if c == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{Skipped: s.Skipped, CompletedSteps: make([]string, len(s.CompletedSteps))}
	copy(out.CompletedSteps, s.CompletedSteps)
	return out
}

// Equal reports whether two states are observably equivalent: same skipped
// flag and same set of completed ids (order-insensitive).
func Equal(a, b State) bool {
	if a.Skipped != b.Skipped || len(a.CompletedSteps) != len(b.CompletedSteps) {
		return false
	}
	for _, id := range a.CompletedSteps {
		if !b.Completed(id) {
			return false
		}
	}
	return true
}

// Store is the persistence boundary for tracker state. Implementations must
// be safe for one logical owner at a time; cross-process consistency is
// last-writer-wins.
type Store interface {
	// Load returns the stored state. A non-nil error always comes paired
	// with the default state so callers can adopt the result directly.
	Load() (State, error)
	// Save writes the state under the well-known key.
	Save(State) error
	// Wipe removes the stored record entirely. This is the only operation
	// that clears the skipped flag.
	Wipe() error
}

// wireState mirrors State with optional fields so shape validation can tell
// "field absent" apart from a zero value.
type wireState struct {
	CompletedSteps *[]string `json:"completed_steps"`
	Skipped        *bool     `json:"skipped"`
}

// decode parses a serialized tracker record, enforcing the expected shape.
// JSON that parses but is missing either field is malformed: a partially
// trusted record is worse than starting over.
func decode(data []byte) (State, error) {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if w.CompletedSteps == nil || w.Skipped == nil {
		return Default(), fmt.Errorf("%w: missing required fields", ErrMalformed)
	}
	st := State{CompletedSteps: *w.CompletedSteps, Skipped: *w.Skipped}
	if st.CompletedSteps == nil {
		st.CompletedSteps = []string{}
	}
	return st, nil
}

// encode serializes a tracker record for storage.
func encode(s State) ([]byte, error) {
	if s.CompletedSteps == nil {
		s.CompletedSteps = []string{}
	}
	return json.MarshalIndent(s, "", "  ")
}
