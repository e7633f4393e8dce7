package cmd

import (
	"testing"

	"github.com/crossfeed/onboard/internal/store"
	"github.com/crossfeed/onboard/internal/tracker"
)

func TestStatusReportFreshState(t *testing.T) {
	eng := tracker.New(store.NewMemStore())

	r := buildStatusReport(eng)
	if r.Progress != 0 {
		t.Errorf("progress: got %d, want 0", r.Progress)
	}
	if r.CurrentStep != "connect-platform" {
		t.Errorf("current step: got %q, want connect-platform", r.CurrentStep)
	}
	if r.IsComplete || r.Skipped {
		t.Errorf("flags: complete=%v skipped=%v, want false/false", r.IsComplete, r.Skipped)
	}
	if len(r.Steps) != 5 {
		t.Errorf("steps: got %d, want 5", len(r.Steps))
	}
}

func TestStatusReportSkipped(t *testing.T) {
	eng := tracker.New(store.NewMemStore())
	eng.Skip()

	r := buildStatusReport(eng)
	if !r.IsComplete || !r.Skipped {
		t.Errorf("flags: complete=%v skipped=%v, want true/true", r.IsComplete, r.Skipped)
	}
	if r.Progress != 0 {
		t.Errorf("progress: got %d, want 0", r.Progress)
	}
}

func TestStatusOutputsDoNotCrash(t *testing.T) {
	eng := tracker.New(store.NewMemStore())
	eng.CompleteStep("connect-platform")

	if err := outputStatusChecklist(eng); err != nil {
		t.Errorf("outputStatusChecklist: %v", err)
	}
	if err := outputStatusJSON(eng); err != nil {
		t.Errorf("outputStatusJSON: %v", err)
	}

	eng.Skip()
	if err := outputStatusChecklist(eng); err != nil {
		t.Errorf("outputStatusChecklist (skipped): %v", err)
	}
}
