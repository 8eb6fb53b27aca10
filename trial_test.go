package contend

import (
	"errors"
	"testing"
)

func TestTrialAtomicEndToEnd(t *testing.T) {
	s := NewAtomic(2, 1000)
	d, err := RunTrial(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Count(); got != 2000 {
		t.Errorf("count=%d, want 2000", got)
	}
	if d <= 0 {
		t.Errorf("duration=%v, want > 0", d)
	}
}

func TestTrialDurationsArePositive(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if RaceEnabled && IsRacy(f(1)) {
			continue
		}
		d, err := RunTrial(f(1000))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if sec := d.Seconds(); sec <= 0 {
			t.Errorf("%s: measured %v seconds, want > 0", name, sec)
		}
	}
}

func TestTrialParkedWait(t *testing.T) {
	s := NewSharedMutex(2, 10_000)
	d, err := RunTrial(s, WithParkedWait())
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Count(); got != 20_000 {
		t.Errorf("count=%d, want 20000", got)
	}
	if d <= 0 {
		t.Errorf("duration=%v, want > 0", d)
	}
}

type failingScenario struct {
	err error
}

func (s *failingScenario) Name() string { return "failing" }
func (s *failingScenario) Workers() int { return 2 }
func (s *failingScenario) Run(worker int) error {
	if worker == 1 {
		return s.err
	}
	return nil
}

func TestTrialPropagatesWorkerError(t *testing.T) {
	want := errors.New("boom")
	_, err := RunTrial(&failingScenario{err: want})
	if !errors.Is(err, want) {
		t.Errorf("err=%v, want %v", err, want)
	}
}

type zeroWorkerScenario struct{}

func (zeroWorkerScenario) Name() string  { return "zero" }
func (zeroWorkerScenario) Workers() int  { return 0 }
func (zeroWorkerScenario) Run(int) error { return nil }

func TestTrialRejectsWorkerlessScenario(t *testing.T) {
	if _, err := RunTrial(zeroWorkerScenario{}); err == nil {
		t.Error("trial accepted a scenario with zero workers")
	}
}
