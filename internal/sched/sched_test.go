package sched

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testConfig = Config{
	Work:              25 * time.Minute,
	ShortBreak:        5 * time.Minute,
	LongBreak:         15 * time.Minute,
	LongBreakInterval: 4,
}

// snapshot captures the externally visible scheduler state for comparison.
type snapshot struct {
	State         RunState
	Session       Kind
	Remaining     int
	Total         int
	CompletedWork int
	CyclePosition int
}

func capture(s *Scheduler) snapshot {
	return snapshot{
		State:         s.State(),
		Session:       s.Session(),
		Remaining:     s.Remaining(),
		Total:         s.Total(),
		CompletedWork: s.CompletedWorkSessions(),
		CyclePosition: s.CyclePosition(),
	}
}

func tick(s *Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// runThroughSession starts the scheduler and ticks until the current
// session completes.
func runThroughSession(s *Scheduler) {
	s.Start()
	tick(s, s.Remaining())
}

func TestNewScheduler(t *testing.T) {
	s := New(testConfig, Events{})

	want := snapshot{
		State:         Idle,
		Session:       Work,
		Remaining:     1500,
		Total:         1500,
		CompletedWork: 0,
		CyclePosition: 1,
	}

	if diff := cmp.Diff(want, capture(s)); diff != "" {
		t.Errorf("unexpected initial state (-want +got):\n%s", diff)
	}
}

func TestWorkSessionCompletion(t *testing.T) {
	s := New(testConfig, Events{})

	s.Start()
	tick(s, 1500)

	want := snapshot{
		State:         Paused,
		Session:       ShortBreak,
		Remaining:     300,
		Total:         300,
		CompletedWork: 1,
		CyclePosition: 2,
	}

	if diff := cmp.Diff(want, capture(s)); diff != "" {
		t.Errorf("unexpected state after work session (-want +got):\n%s", diff)
	}
}

func TestLongBreakAfterInterval(t *testing.T) {
	s := New(testConfig, Events{})

	// Three full work+short break cycles, then the fourth work session.
	for i := 0; i < 3; i++ {
		runThroughSession(s) // work
		runThroughSession(s) // short break
	}

	runThroughSession(s)

	want := snapshot{
		State:         Paused,
		Session:       LongBreak,
		Remaining:     900,
		Total:         900,
		CompletedWork: 4,
		CyclePosition: 1,
	}

	if diff := cmp.Diff(want, capture(s)); diff != "" {
		t.Errorf("unexpected state after 4th work session (-want +got):\n%s", diff)
	}
}

func TestCyclePositionProgression(t *testing.T) {
	s := New(testConfig, Events{})

	wantPositions := []int{2, 3, 4, 1, 2}

	for i, want := range wantPositions {
		runThroughSession(s) // work
		if got := s.CyclePosition(); got != want {
			t.Fatalf(
				"completion %d: cycle position = %d, want %d",
				i+1, got, want,
			)
		}

		runThroughSession(s) // break
	}

	if got := s.CompletedWorkSessions(); got != 5 {
		t.Errorf("completed work sessions = %d, want 5", got)
	}
}

func TestBreakCompletionDoesNotCount(t *testing.T) {
	s := New(testConfig, Events{})

	runThroughSession(s) // work
	runThroughSession(s) // short break

	if got := s.CompletedWorkSessions(); got != 1 {
		t.Errorf("completed work sessions = %d, want 1", got)
	}

	if got := s.Session(); got != Work {
		t.Errorf("session after break = %v, want %v", got, Work)
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	testCases := []struct {
		name    string
		arrange func(s *Scheduler)
	}{
		{
			name:    "idle",
			arrange: func(s *Scheduler) {},
		},
		{
			name: "paused",
			arrange: func(s *Scheduler) {
				s.Start()
				s.Tick()
				s.Pause()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(testConfig, Events{})
			tc.arrange(s)

			before := capture(s)
			tick(s, 10)

			if diff := cmp.Diff(before, capture(s)); diff != "" {
				t.Errorf("tick mutated state (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommandIdempotence(t *testing.T) {
	s := New(testConfig, Events{})

	s.Start()
	s.Start()
	s.Start()

	if got := s.State(); got != Running {
		t.Errorf("state after repeated Start = %v, want %v", got, Running)
	}

	s.Tick()
	after := capture(s)

	s.Pause()
	s.Pause()

	after.State = Paused
	if diff := cmp.Diff(after, capture(s)); diff != "" {
		t.Errorf("repeated Pause (-want +got):\n%s", diff)
	}
}

func TestInvalidCommandsAreNoOps(t *testing.T) {
	s := New(testConfig, Events{})

	// Pause while idle must change nothing.
	before := capture(s)
	s.Pause()

	if diff := cmp.Diff(before, capture(s)); diff != "" {
		t.Errorf("Pause while idle (-want +got):\n%s", diff)
	}
}

func TestResetMidBreak(t *testing.T) {
	s := New(testConfig, Events{})

	runThroughSession(s) // complete a work session
	s.Start()
	tick(s, 60) // one minute into the short break

	s.Reset()

	want := snapshot{
		State:         Idle,
		Session:       Work,
		Remaining:     1500,
		Total:         1500,
		CompletedWork: 1,
		CyclePosition: 2,
	}

	if diff := cmp.Diff(want, capture(s)); diff != "" {
		t.Errorf("unexpected state after reset (-want +got):\n%s", diff)
	}
}

func TestResetFromAnyState(t *testing.T) {
	testCases := []struct {
		name    string
		arrange func(s *Scheduler)
	}{
		{"idle", func(s *Scheduler) {}},
		{"running", func(s *Scheduler) { s.Start(); tick(s, 5) }},
		{"paused", func(s *Scheduler) { s.Start(); tick(s, 5); s.Pause() }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(testConfig, Events{})
			tc.arrange(s)

			s.Reset()
			s.Reset() // must be safe to repeat

			if got := s.State(); got != Idle {
				t.Errorf("state = %v, want %v", got, Idle)
			}

			if got := s.Remaining(); got != 1500 {
				t.Errorf("remaining = %d, want 1500", got)
			}
		})
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	cfg := testConfig
	cfg.Work = 3 * time.Second
	cfg.ShortBreak = 2 * time.Second

	s := New(cfg, Events{})
	s.Start()

	for i := 0; i < 20; i++ {
		s.Tick()

		if s.Remaining() < 0 || s.Remaining() > s.Total() {
			t.Fatalf(
				"remaining %d out of range [0, %d]",
				s.Remaining(), s.Total(),
			)
		}

		// Sessions complete into the paused state; resume to keep
		// ticking through the cycle.
		s.Start()
	}
}

func TestNotifyEmittedOncePerCompletion(t *testing.T) {
	var completions []Kind

	s := New(testConfig, Events{
		Notify: func(completed Kind) {
			completions = append(completions, completed)
		},
	})

	runThroughSession(s) // work
	runThroughSession(s) // short break

	want := []Kind{Work, ShortBreak}
	if diff := cmp.Diff(want, completions); diff != "" {
		t.Errorf("notify events (-want +got):\n%s", diff)
	}
}

func TestWorkSessionCompletedCarriesCount(t *testing.T) {
	var counts []int

	s := New(testConfig, Events{
		WorkSessionCompleted: func(count int) {
			counts = append(counts, count)
		},
	})

	for i := 0; i < 3; i++ {
		runThroughSession(s) // work
		runThroughSession(s) // break
	}

	want := []int{1, 2, 3}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("work completion counts (-want +got):\n%s", diff)
	}
}

func TestSessionChangedEvent(t *testing.T) {
	type change struct {
		Kind     Kind
		Total    int
		Position int
	}

	var changes []change

	s := New(testConfig, Events{
		SessionChanged: func(kind Kind, total, cyclePosition int) {
			changes = append(changes, change{kind, total, cyclePosition})
		},
	})

	runThroughSession(s) // work -> short break
	runThroughSession(s) // short break -> work

	want := []change{
		{ShortBreak, 300, 2},
		{Work, 1500, 2},
	}

	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("session changes (-want +got):\n%s", diff)
	}
}

func TestTickUpdatedEverySecond(t *testing.T) {
	var ticks int

	cfg := testConfig
	cfg.Work = 10 * time.Second

	s := New(cfg, Events{
		TickUpdated: func(remaining, total int) {
			ticks++

			if total != 10 {
				t.Errorf("total = %d, want 10", total)
			}

			if want := 10 - ticks; remaining != want {
				t.Errorf("remaining = %d, want %d", remaining, want)
			}
		},
	})

	s.Start()
	tick(s, 10)

	if ticks != 10 {
		t.Errorf("tick events = %d, want 10", ticks)
	}
}
