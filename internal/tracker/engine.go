// Package tracker is the single source of truth for onboarding progress
// during a session. The engine seeds its state from a store, applies the two
// mutation intents (complete a step, skip onboarding), and computes derived
// views on demand. Persistence failures never propagate to the user: the
// in-memory state stays authoritative and the last failure is kept for
// hosts that want to warn.
package tracker

import (
	"github.com/crossfeed/onboard/internal/catalog"
	"github.com/crossfeed/onboard/internal/store"
)

// Engine owns tracker state for one session. Not safe for concurrent use;
// hosts drive it from a single goroutine (CLI command or TUI update loop).
type Engine struct {
	store      store.Store
	steps      []catalog.StepDefinition
	state      store.State
	reconciled bool
	persistErr error
}

// New seeds an engine from the store using the compiled-in catalog. A load
// failure degrades to the default state.
func New(s store.Store) *Engine {
	return NewWithCatalog(s, catalog.Steps())
}

// NewWithCatalog is New with an explicit catalog, for hosts and tests that
// need a different step set.
func NewWithCatalog(s store.Store, steps []catalog.StepDefinition) *Engine {
	st, err := s.Load()
	if err != nil {
		st = store.Default()
	}
	return &Engine{
		store: s,
		steps: steps,
		state: Normalize(st, steps),
	}
}

// Reconcile re-reads the store once per engine lifetime and adopts the
// stored state if it differs from the seed. Hosts whose storage may not be
// ready when the engine is constructed call this once the environment
// settles, so previously saved progress is not lost to a timing gap.
// Returns true if the state changed.
func (e *Engine) Reconcile() bool {
	if e.reconciled {
		return false
	}
	e.reconciled = true

	st, err := e.store.Load()
	if err != nil {
		return false
	}
	st = Normalize(st, e.steps)
	if store.Equal(st, e.state) {
		return false
	}
	e.state = st
	return true
}

// CompleteStep records the step as done and persists. Completing an
// already-completed step is a no-op, as is an id with no catalog entry.
// Returns true if the state changed.
func (e *Engine) CompleteStep(id string) bool {
	if e.state.Completed(id) {
		return false
	}
	known := false
	for _, s := range e.steps {
		if s.ID == id {
			known = true
			break
		}
	}
	if !known {
		return false
	}

	e.state.CompletedSteps = append(e.state.CompletedSteps, id)
	e.persist()
	return true
}

// Skip marks onboarding as skipped and persists. There is no unskip; the
// flag is only cleared by Wipe.
func (e *Engine) Skip() {
	e.state.Skipped = true
	e.persist()
}

// Wipe removes the persisted record and resets the in-memory state to the
// default. The returned error is informational; the reset happens
// regardless.
func (e *Engine) Wipe() error {
	err := e.store.Wipe()
	e.state = store.Default()
	e.persistErr = err
	return err
}

// persist writes the current state, swallowing failures. The in-memory
// state remains the source of truth for this session either way.
func (e *Engine) persist() {
	e.persistErr = e.store.Save(e.state.Clone())
}

// PersistErr returns the error from the most recent persistence attempt, or
// nil if it succeeded. Hosts may surface it as a warning; nothing in the
// engine retries.
func (e *Engine) PersistErr() error {
	return e.persistErr
}

// State returns a snapshot of the current tracker state.
func (e *Engine) State() store.State {
	return e.state.Clone()
}

// Catalog returns the step catalog the engine derives against.
func (e *Engine) Catalog() []catalog.StepDefinition {
	out := make([]catalog.StepDefinition, len(e.steps))
	copy(out, e.steps)
	return out
}

// Steps returns the derived per-step view in catalog order.
func (e *Engine) Steps() []StepView {
	return DeriveSteps(e.state, e.steps)
}

// CurrentStep returns the first incomplete step, or nil when onboarding has
// nothing left to offer.
func (e *Engine) CurrentStep() *catalog.StepDefinition {
	return CurrentStep(e.state, e.steps)
}

// Progress returns the completion percentage, 0-100.
func (e *Engine) Progress() int {
	return Progress(e.state, e.steps)
}

// IsComplete reports whether onboarding is finished (skipped or fully
// completed).
func (e *Engine) IsComplete() bool {
	return IsComplete(e.state, e.steps)
}

// Skipped reports whether the user opted out of onboarding.
func (e *Engine) Skipped() bool {
	return e.state.Skipped
}
