package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/demilade/pomo/internal/sched"
	"github.com/demilade/pomo/internal/timeutil"
)

// sessionLabel returns the textual label for the current scheduler state.
func (t *Timer) sessionLabel() string {
	switch t.sch.State() {
	case sched.Idle:
		return "Ready"
	case sched.Paused:
		return "Paused"
	}

	switch t.sch.Session() {
	case sched.ShortBreak:
		return "Short Break"
	case sched.LongBreak:
		return "Long Break"
	default:
		return "Focus Time"
	}
}

func (t *Timer) kindStyle(kind sched.Kind) lipgloss.Style {
	switch kind {
	case sched.ShortBreak:
		return t.style.shortBreak
	case sched.LongBreak:
		return t.style.longBreak
	default:
		return t.style.work
	}
}

func (t *Timer) sessionMessage(kind sched.Kind) string {
	switch kind {
	case sched.ShortBreak:
		return t.Opts.ShortBreak.Message
	case sched.LongBreak:
		return t.Opts.LongBreak.Message
	default:
		return t.Opts.Work.Message
	}
}

// sessionPromptView is shown between sessions when auto-start is off.
func (t *Timer) sessionPromptView() string {
	var s strings.Builder

	title := "Your focus session is complete"
	msg := "It's time to take a well-deserved break!"

	if t.sch.Session() == sched.Work {
		title = "Your break is over"
		msg = "It's time to refocus and get back to work!"
	}

	s.WriteString(t.style.countdown.Render(title))
	s.WriteString("\n\n" + t.style.hint.Render(msg))
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) timerView() string {
	var s strings.Builder

	kind := t.sch.Session()

	s.WriteString(t.kindStyle(kind).Render(t.sessionLabel()))

	if t.sch.State() == sched.Running {
		var timeFormat string
		if t.Opts.Settings.TwentyFourHour {
			timeFormat = "15:04"
		} else {
			timeFormat = "03:04 PM"
		}

		end := time.Now().
			Add(time.Duration(t.sch.Remaining()) * time.Second)

		s.WriteString(
			t.style.hint.Render(" until " + end.Format(timeFormat)),
		)
	}

	if kind == sched.Work {
		s.WriteString(t.style.hint.Render(fmt.Sprintf(
			" (%d/%d)",
			t.sch.CyclePosition(),
			t.Opts.Settings.LongBreakInterval,
		)))
	}

	s.WriteString("\n")
	s.WriteString(t.style.hint.Render(t.sessionMessage(kind)))

	s.WriteString("\n\n")
	s.WriteString(
		t.style.countdown.Render(
			timeutil.FormatCountdown(t.sch.Remaining()),
		),
	)

	percent := 1.0
	if t.sch.Total() > 0 {
		percent = 1 - float64(t.sch.Remaining())/float64(t.sch.Total())
	}

	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(percent))

	s.WriteString("\n\n")
	s.WriteString(t.style.hint.Render(
		"Focused today: " + t.cumulativeFocusTime(),
	))

	s.WriteString(t.sessionHelpView())

	return s.String()
}

func (t *Timer) sessionHelpView() string {
	if t.sch.Session() == sched.Work {
		return "\n\n" + t.help.ShortHelpView([]key.Binding{
			defaultKeymap.togglePlay,
			defaultKeymap.reset,
			defaultKeymap.quit,
		})
	}

	return "\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.esc,
		defaultKeymap.quit,
	})
}

func (t *Timer) View() string {
	if t.waitForNextSession {
		return t.style.base.Render(t.sessionPromptView())
	}

	return t.style.base.Render(t.timerView())
}
