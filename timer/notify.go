package timer

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/demilade/pomo/internal/sched"
)

// desktopNotify sends a desktop notification announcing the completed
// session.
func (t *Timer) desktopNotify(completed sched.Kind) {
	if !t.Opts.Notifications.Enabled {
		return
	}

	title := string(completed) + " is finished"

	msg := "Time to get back to work!"
	if completed == sched.Work {
		msg = "Time to take a break!"
	}

	if err := beeep.Notify(title, msg, ""); err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runSessionCmd executes the configured post-session command, if any.
func (t *Timer) runSessionCmd() {
	sessionCmd := t.Opts.Settings.Cmd
	if sessionCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		slog.Error("unable to parse session cmd", slog.Any("error", err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	if err := exec.Command(name, args...).Run(); err != nil {
		slog.Error("session cmd failed", slog.Any("error", err))
	}
}
