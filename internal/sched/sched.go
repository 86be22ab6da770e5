// Package sched implements the session scheduler that alternates work and
// break intervals according to the Pomodoro technique.
package sched

import "time"

// RunState represents the execution state of the scheduler.
type RunState string

const (
	Idle    RunState = "idle"
	Running RunState = "running"
	Paused  RunState = "paused"
)

// Kind represents the type of the current session.
type Kind string

const (
	Work       Kind = "Work session"
	ShortBreak Kind = "Short break"
	LongBreak  Kind = "Long break"
)

// Config holds the immutable session durations and the number of work
// sessions that must complete before a long break is taken.
type Config struct {
	Work              time.Duration
	ShortBreak        time.Duration
	LongBreak         time.Duration
	LongBreakInterval int
}

// Events holds the callbacks through which the scheduler reports state
// changes to the presentation layer. Nil callbacks are skipped so consumers
// subscribe only to what they render.
type Events struct {
	// TickUpdated fires once per consumed tick with the remaining and
	// total session length in seconds.
	TickUpdated func(remaining, total int)
	// LabelChanged fires whenever the run state changes.
	LabelChanged func(state RunState, kind Kind)
	// SessionChanged fires on entering a new session.
	SessionChanged func(kind Kind, total, cyclePosition int)
	// Notify fires exactly once per completed session.
	Notify func(completed Kind)
	// WorkSessionCompleted fires after a work session completes, with the
	// updated completion count.
	WorkSessionCompleted func(count int)
}

// Scheduler is the session state machine. It owns no clock: the caller
// drives it by invoking Tick once per second while it is running. All
// methods must be called from a single goroutine.
type Scheduler struct {
	cfg Config
	ev  Events

	state         RunState
	session       Kind
	remaining     int
	total         int
	completedWork int
	cyclePosition int
}

// New returns a scheduler in the idle state, positioned at the start of a
// work session.
func New(cfg Config, ev Events) *Scheduler {
	s := &Scheduler{
		cfg:           cfg,
		ev:            ev,
		state:         Idle,
		session:       Work,
		cyclePosition: 1,
	}

	s.total = int(cfg.Work.Seconds())
	s.remaining = s.total

	return s
}

// State reports the current run state.
func (s *Scheduler) State() RunState { return s.state }

// Session reports the kind of the current session.
func (s *Scheduler) Session() Kind { return s.session }

// Remaining reports the seconds left in the current session.
func (s *Scheduler) Remaining() int { return s.remaining }

// Total reports the full length of the current session in seconds.
func (s *Scheduler) Total() int { return s.total }

// CompletedWorkSessions reports how many work sessions have completed since
// the scheduler was created. The count is monotonic: it survives Reset.
func (s *Scheduler) CompletedWorkSessions() int { return s.completedWork }

// CyclePosition reports the 1-based position within the current long break
// cycle.
func (s *Scheduler) CyclePosition() int { return s.cyclePosition }

// duration returns the configured length for a session kind.
func (s *Scheduler) duration(kind Kind) time.Duration {
	switch kind {
	case ShortBreak:
		return s.cfg.ShortBreak
	case LongBreak:
		return s.cfg.LongBreak
	default:
		return s.cfg.Work
	}
}

// Start begins or resumes the current session. It is a no-op while already
// running.
func (s *Scheduler) Start() {
	if s.state == Running {
		return
	}

	s.state = Running

	if s.ev.LabelChanged != nil {
		s.ev.LabelChanged(s.state, s.session)
	}
}

// Pause suspends the countdown. It is a no-op unless the scheduler is
// running.
func (s *Scheduler) Pause() {
	if s.state != Running {
		return
	}

	s.state = Paused

	if s.ev.LabelChanged != nil {
		s.ev.LabelChanged(s.state, s.session)
	}
}

// Reset stops the countdown and rewinds to the start of a fresh work
// session. The work session completion count and the cycle position are
// deliberately left untouched so that the running tally survives a manual
// reset (matching the reference behaviour; revisit if the product decides
// otherwise).
func (s *Scheduler) Reset() {
	s.Pause()

	s.state = Idle
	s.session = Work
	s.total = int(s.cfg.Work.Seconds())
	s.remaining = s.total

	if s.ev.LabelChanged != nil {
		s.ev.LabelChanged(s.state, s.session)
	}
}

// Tick advances the countdown by one second. Ticks received while the
// scheduler is not running are ignored, which guards against stray timer
// callbacks delivered after a pause or reset. A tick that exhausts the
// session completes it synchronously before returning.
func (s *Scheduler) Tick() {
	if s.state != Running {
		return
	}

	s.remaining--
	if s.remaining < 0 {
		s.remaining = 0
	}

	if s.ev.TickUpdated != nil {
		s.ev.TickUpdated(s.remaining, s.total)
	}

	if s.remaining <= 0 {
		s.completeSession()
	}
}

// completeSession finalises the current session: the scheduler pauses
// itself (stopping the tick source is its responsibility, not the
// caller's), collaborators are notified, and the next session is staged
// without being started.
func (s *Scheduler) completeSession() {
	completed := s.session

	s.state = Paused

	if s.ev.LabelChanged != nil {
		s.ev.LabelChanged(s.state, s.session)
	}

	if s.ev.Notify != nil {
		s.ev.Notify(completed)
	}

	if completed == Work {
		s.completedWork++

		if s.ev.WorkSessionCompleted != nil {
			s.ev.WorkSessionCompleted(s.completedWork)
		}
	}

	s.moveToNextSession()
}

// moveToNextSession stages the session that follows the one just
// completed. A long break follows the Nth work session where N is the long
// break interval; every other work session is followed by a short break,
// and every break returns to work. The next session is not auto-started:
// the operator (or the auto-start setting at the presentation layer) must
// call Start again.
func (s *Scheduler) moveToNextSession() {
	if s.session == Work {
		if s.completedWork%s.cfg.LongBreakInterval == 0 {
			s.session = LongBreak
			s.cyclePosition = 1
		} else {
			s.session = ShortBreak
			s.cyclePosition++
		}
	} else {
		s.session = Work
	}

	s.total = int(s.duration(s.session).Seconds())
	s.remaining = s.total

	if s.ev.SessionChanged != nil {
		s.ev.SessionChanged(s.session, s.total, s.cyclePosition)
	}
}
