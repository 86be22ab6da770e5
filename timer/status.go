package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/demilade/pomo/internal/config"
	"github.com/demilade/pomo/internal/sched"
	"github.com/demilade/pomo/internal/timeutil"
)

// statusMaxAge is how stale a status file may be before it is assumed to
// belong to a dead timer process.
const statusMaxAge = 5 * time.Second

// Status is the JSON snapshot a running timer writes on every tick so that
// `pomo status` can report on it from another terminal.
type Status struct {
	UpdatedAt             time.Time      `json:"updated_at"`
	Session               sched.Kind     `json:"session"`
	RunState              sched.RunState `json:"run_state"`
	Remaining             int            `json:"remaining"`
	Total                 int            `json:"total"`
	CyclePosition         int            `json:"cycle_position"`
	LongBreakInterval     int            `json:"long_break_interval"`
	CompletedWorkSessions int            `json:"completed_work_sessions"`
}

func (t *Timer) writeStatusFile() error {
	s := Status{
		UpdatedAt:             time.Now(),
		Session:               t.sch.Session(),
		RunState:              t.sch.State(),
		Remaining:             t.sch.Remaining(),
		Total:                 t.sch.Total(),
		CyclePosition:         t.sch.CyclePosition(),
		LongBreakInterval:     t.Opts.Settings.LongBreakInterval,
		CompletedWorkSessions: t.sch.CompletedWorkSessions(),
	}

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(config.StatusFilePath(), b, 0o600)
}

func (t *Timer) removeStatusFile() {
	_ = os.Remove(config.StatusFilePath())
}

// ReportStatus prints the state of a timer running in another terminal. It
// reports nothing when no live status file exists.
func ReportStatus() error {
	b, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return errStatusUnreadable.Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return errStatusUnreadable.Wrap(err)
	}

	// A stale snapshot means the timer that wrote it is gone. A paused
	// timer keeps its snapshot fresh only up to the pause, so it is
	// reported while recent and silently dropped afterwards.
	if time.Since(s.UpdatedAt) > statusMaxAge &&
		s.RunState != sched.Paused {
		return nil
	}

	var text string

	switch s.Session {
	case sched.Work:
		text = fmt.Sprintf(
			"[Work %d/%d]",
			s.CyclePosition,
			s.LongBreakInterval,
		)
	case sched.ShortBreak:
		text = "[Short break]"
	case sched.LongBreak:
		text = "[Long break]"
	}

	if s.RunState == sched.Paused {
		text += " (paused)"
	}

	pterm.Printfln("%s: %s", text, timeutil.FormatCountdown(s.Remaining))

	return nil
}
