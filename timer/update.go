package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/demilade/pomo/internal/sched"
)

const reportTimeout = 15 * time.Second

// handleTick consumes one clock signal and re-arms the tick command only
// while the scheduler keeps running. Session completion pauses the
// scheduler, so the tick source stops in lockstep.
func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	if t.sch.State() != sched.Running {
		// A tick delivered after pause or quit. Drop it.
		return t, nil
	}

	t.sch.Tick()

	_ = t.writeStatusFile()

	if t.sch.State() == sched.Running {
		return t, tick()
	}

	return t, nil
}

func (t *Timer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.waitForNextSession {
			return t, nil
		}

		if t.sch.State() == sched.Running {
			t.sch.Pause()

			_ = t.writeStatusFile()

			return t, nil
		}

		t.sch.Start()

		return t, tick()

	case key.Matches(msg, defaultKeymap.enter):
		if !t.waitForNextSession {
			return t, nil
		}

		t.waitForNextSession = false
		t.sch.Start()

		return t, tick()

	case key.Matches(msg, defaultKeymap.esc):
		// Skipping is only meaningful during a break; a reset rewinds to
		// a fresh work session without touching the completion tally.
		if t.sch.Session() == sched.Work {
			return t, nil
		}

		t.waitForNextSession = false
		t.sch.Reset()
		t.sch.Start()

		return t, tick()

	case key.Matches(msg, defaultKeymap.reset):
		t.waitForNextSession = false
		t.sch.Reset()

		_ = t.writeStatusFile()

		return t, nil

	case key.Matches(msg, defaultKeymap.quit):
		t.removeStatusFile()

		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick()

	case tea.KeyMsg:
		return t.handleKey(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself.
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}

// onLabelChanged records run state transitions.
func (t *Timer) onLabelChanged(state sched.RunState, kind sched.Kind) {
	slog.Debug("run state changed",
		slog.String("state", string(state)),
		slog.String("session", string(kind)),
	)
}

// onSessionChanged stages the next session, auto-starting it when the
// configuration says so.
func (t *Timer) onSessionChanged(kind sched.Kind, total, cyclePosition int) {
	slog.Info("session changed",
		slog.String("session", string(kind)),
		slog.Int("total_seconds", total),
		slog.Int("cycle_position", cyclePosition),
	)

	autoStart := t.Opts.Settings.AutoStartBreak
	if kind == sched.Work {
		autoStart = t.Opts.Settings.AutoStartWork
	}

	if autoStart {
		t.sch.Start()
		return
	}

	t.waitForNextSession = true
}

// onSessionCompleted triggers the completion collaborators. All of them are
// fire-and-forget: their failures are logged and never reach the scheduler.
func (t *Timer) onSessionCompleted(completed sched.Kind) {
	slog.Debug("session completed", slog.String("dump", spew.Sdump(completed)))

	go t.desktopNotify(completed)
	go t.playAlertSound(completed)
	go t.runSessionCmd()
}

// onWorkSessionCompleted reports the finished work session to the session
// server, if one is configured.
func (t *Timer) onWorkSessionCompleted(count int) {
	slog.Info("work session completed", slog.Int("count", count))

	if t.client == nil {
		return
	}

	workMinutes := int(t.Opts.Work.Duration.Minutes())

	go func() {
		ctx, cancel := context.WithTimeout(
			context.Background(),
			reportTimeout,
		)
		defer cancel()

		if err := t.client.ReportCompleted(ctx, workMinutes); err != nil {
			slog.Error("unable to report completed session",
				slog.Any("error", err),
			)
		}
	}()
}
