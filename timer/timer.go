// Package timer renders the countdown timer and connects the session
// scheduler to its collaborators: desktop notifications, alert sounds, the
// post-session command, and the session server.
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/demilade/pomo/internal/config"
	"github.com/demilade/pomo/internal/sched"
	"github.com/demilade/pomo/internal/timeutil"
	"github.com/demilade/pomo/sync"
)

const (
	padding  = 2
	maxWidth = 80
)

type keymap struct {
	togglePlay key.Binding
	enter      key.Binding
	esc        key.Binding
	reset      key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play/pause"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "begin next session"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "skip break"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// tickMsg is the 1 Hz clock signal that drives the scheduler.
type tickMsg time.Time

// styles holds the lipgloss styles derived from the configured colors.
type styles struct {
	base       lipgloss.Style
	work       lipgloss.Style
	shortBreak lipgloss.Style
	longBreak  lipgloss.Style
	countdown  lipgloss.Style
	hint       lipgloss.Style
}

func newStyles(cfg *config.Config) styles {
	return styles{
		base: lipgloss.NewStyle().Padding(1, padding),
		work: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.Work.Color)),
		shortBreak: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.ShortBreak.Color)),
		longBreak: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.LongBreak.Color)),
		countdown: lipgloss.NewStyle().Bold(true),
		hint:      lipgloss.NewStyle().Faint(true),
	}
}

// Timer is the bubbletea model for a timer run.
type Timer struct {
	Opts *config.Config

	sch    *sched.Scheduler
	client *sync.Client

	progress progress.Model
	help     help.Model
	style    styles

	// waitForNextSession is set when a session completes and the next one
	// requires an explicit keypress to begin.
	waitForNextSession bool
}

// New creates a timer for the given configuration.
func New(cfg *config.Config) *Timer {
	t := &Timer{
		Opts:     cfg,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		style:    newStyles(cfg),
	}

	if cfg.Sync.Enabled {
		t.client = sync.NewClient(cfg.Sync.ServerURL)
	}

	t.sch = sched.New(
		sched.Config{
			Work:              cfg.Work.Duration,
			ShortBreak:        cfg.ShortBreak.Duration,
			LongBreak:         cfg.LongBreak.Duration,
			LongBreakInterval: cfg.Settings.LongBreakInterval,
		},
		sched.Events{
			LabelChanged:         t.onLabelChanged,
			SessionChanged:       t.onSessionChanged,
			Notify:               t.onSessionCompleted,
			WorkSessionCompleted: t.onWorkSessionCompleted,
		},
	)

	return t
}

// Scheduler exposes the underlying state machine, primarily for the status
// view.
func (t *Timer) Scheduler() *sched.Scheduler {
	return t.sch
}

// Init begins the first work session immediately.
func (t *Timer) Init() tea.Cmd {
	t.sch.Start()

	return tick()
}

// tick schedules the next clock signal on the following second boundary.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(ts time.Time) tea.Msg {
		return tickMsg(ts)
	})
}

// cumulativeFocusTime formats the total focus time accumulated across
// completed work sessions.
func (t *Timer) cumulativeFocusTime() string {
	workMinutes := int(t.Opts.Work.Duration.Minutes())

	return timeutil.FormatCumulative(
		t.sch.CompletedWorkSessions() * workMinutes,
	)
}

// Run starts the timer program and blocks until it exits.
func Run(cfg *config.Config) error {
	t := New(cfg)

	defer t.removeStatusFile()

	slog.Info("timer starting",
		slog.Duration("work", cfg.Work.Duration),
		slog.Duration("short_break", cfg.ShortBreak.Duration),
		slog.Duration("long_break", cfg.LongBreak.Duration),
		slog.Int("long_break_interval", cfg.Settings.LongBreakInterval),
	)

	_, err := tea.NewProgram(t).Run()

	return err
}
