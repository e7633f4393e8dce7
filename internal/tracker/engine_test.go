package tracker

import (
	"errors"
	"testing"

	"github.com/crossfeed/onboard/internal/catalog"
	"github.com/crossfeed/onboard/internal/store"
)

func TestEngineCompleteStepPersists(t *testing.T) {
	ms := store.NewMemStore()
	eng := New(ms)

	if !eng.CompleteStep("connect-platform") {
		t.Fatal("CompleteStep returned false for a fresh valid step")
	}
	if eng.PersistErr() != nil {
		t.Fatalf("persist error: %v", eng.PersistErr())
	}

	// A second engine over the same store observes the write
	eng2 := New(ms)
	if got := eng2.Progress(); got != 20 {
		t.Fatalf("progress in new session: got %d, want 20", got)
	}
}

func TestEngineCompleteStepIdempotent(t *testing.T) {
	eng := New(store.NewMemStore())

	eng.CompleteStep("connect-platform")
	before := eng.State()

	if eng.CompleteStep("connect-platform") {
		t.Error("duplicate CompleteStep reported a change")
	}
	if !store.Equal(eng.State(), before) {
		t.Errorf("state changed on duplicate complete: got %+v, want %+v", eng.State(), before)
	}
}

func TestEngineCompleteUnknownStepIsNoop(t *testing.T) {
	eng := New(store.NewMemStore())
	before := eng.State()

	if eng.CompleteStep("no-such-step") {
		t.Error("unknown step reported a change")
	}
	if eng.CompleteStep("no-such-step") {
		t.Error("repeated unknown step reported a change")
	}
	if !store.Equal(eng.State(), before) {
		t.Errorf("state changed on unknown step: got %+v", eng.State())
	}
}

func TestEngineProgressMonotonic(t *testing.T) {
	eng := New(store.NewMemStore())

	last := eng.Progress()
	ids := append(catalog.IDs(), "bogus", catalog.IDs()[0])
	for _, id := range ids {
		eng.CompleteStep(id)
		if p := eng.Progress(); p < last {
			t.Fatalf("progress decreased: %d -> %d after %q", last, p, id)
		} else {
			last = p
		}
	}
	if last != 100 {
		t.Fatalf("final progress: got %d, want 100", last)
	}
	if cur := eng.CurrentStep(); cur != nil {
		t.Errorf("current step after full completion: got %q, want nil", cur.ID)
	}
	if !eng.IsComplete() {
		t.Error("fully completed engine not complete")
	}
}

func TestEngineSkip(t *testing.T) {
	ms := store.NewMemStore()
	eng := New(ms)

	eng.Skip()
	if !eng.IsComplete() {
		t.Error("skipped engine not complete")
	}
	if got := eng.Progress(); got != 0 {
		t.Errorf("progress after skip: got %d, want 0", got)
	}

	// Skip survives a new session
	if !New(ms).Skipped() {
		t.Error("skip was not persisted")
	}
}

func TestEngineWipeClearsSkip(t *testing.T) {
	ms := store.NewMemStore()
	eng := New(ms)
	eng.CompleteStep("connect-platform")
	eng.Skip()

	if err := eng.Wipe(); err != nil {
		t.Fatalf("Wipe: %v", err)
	}
	if eng.Skipped() || eng.Progress() != 0 {
		t.Errorf("state after wipe: %+v", eng.State())
	}
	if !store.Equal(New(ms).State(), store.Default()) {
		t.Error("wipe did not clear the stored record")
	}
}

func TestEngineSeedsDefaultOnLoadError(t *testing.T) {
	ms := store.NewMemStore()
	ms.LoadErr = errors.New("storage unavailable")

	eng := New(ms)
	if !store.Equal(eng.State(), store.Default()) {
		t.Fatalf("state: got %+v, want default", eng.State())
	}
	if got := eng.Progress(); got != 0 {
		t.Errorf("progress: got %d, want 0", got)
	}
}

func TestEngineSeedFiltersStaleIDs(t *testing.T) {
	ms := store.NewMemStore()
	ms.Seed([]byte(`{"completed_steps": ["connect-platform", "removed-in-v2"], "skipped": false}`))

	eng := New(ms)
	if got := eng.Progress(); got != 20 {
		t.Fatalf("progress: got %d, want 20 (stale id must not count)", got)
	}
	for _, id := range eng.State().CompletedSteps {
		if _, ok := catalog.ByID(id); !ok {
			t.Errorf("stale id %q survived normalization", id)
		}
	}
}

func TestEngineSwallowsSaveFailure(t *testing.T) {
	ms := store.NewMemStore()
	ms.SaveErr = errors.New("quota exceeded")

	eng := New(ms)
	if !eng.CompleteStep("connect-platform") {
		t.Fatal("CompleteStep should still apply in memory")
	}
	if eng.PersistErr() == nil {
		t.Fatal("save failure was not recorded")
	}

	// In-memory state stays authoritative for the session
	if got := eng.Progress(); got != 20 {
		t.Errorf("progress: got %d, want 20", got)
	}

	// A successful later save clears the recorded failure
	ms.SaveErr = nil
	eng.CompleteStep("first-sync")
	if eng.PersistErr() != nil {
		t.Errorf("persist error after recovery: %v", eng.PersistErr())
	}
}

func TestEngineReconcileAdoptsStoredState(t *testing.T) {
	ms := store.NewMemStore()
	ms.LoadErr = errors.New("storage not ready")

	// Seeded while storage was unavailable
	eng := New(ms)

	// Storage comes up with previously saved progress
	ms.LoadErr = nil
	ms.Seed([]byte(`{"completed_steps": ["connect-platform", "first-sync"], "skipped": false}`))

	if !eng.Reconcile() {
		t.Fatal("Reconcile did not adopt the stored state")
	}
	if got := eng.Progress(); got != 40 {
		t.Errorf("progress after reconcile: got %d, want 40", got)
	}
}

func TestEngineReconcileRunsOnce(t *testing.T) {
	ms := store.NewMemStore()
	eng := New(ms)

	if eng.Reconcile() {
		t.Error("first Reconcile with identical state reported a change")
	}

	// Later writes from elsewhere are not adopted; reconciliation is a
	// one-shot per session start
	ms.Seed([]byte(`{"completed_steps": ["connect-platform"], "skipped": false}`))
	if eng.Reconcile() {
		t.Error("second Reconcile ran")
	}
	if got := eng.Progress(); got != 0 {
		t.Errorf("progress: got %d, want 0", got)
	}
}

func TestEngineWithCustomCatalog(t *testing.T) {
	steps := []catalog.StepDefinition{{ID: "only"}}
	eng := NewWithCatalog(store.NewMemStore(), steps)

	if eng.IsComplete() {
		t.Error("incomplete single-step catalog reported complete")
	}
	eng.CompleteStep("only")
	if !eng.IsComplete() || eng.Progress() != 100 {
		t.Errorf("after completing only step: progress %d complete %v", eng.Progress(), eng.IsComplete())
	}
}
