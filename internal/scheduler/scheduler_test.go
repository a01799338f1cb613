package scheduler

import (
	"testing"
)

func TestRunOnceInvokesJob(t *testing.T) {
	var calls int
	s, err := New("0 8 * * *", func() { calls++ })
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	s.RunOnce()
	s.RunOnce()
	if calls != 2 {
		t.Fatalf("job calls = %d, want 2", calls)
	}
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	if _, err := New("not a cron spec", func() {}); err == nil {
		t.Fatalf("expected error for invalid cron spec")
	}
}
