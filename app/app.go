// Package app defines the command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/demilade/pomo/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "pomo",
		Usage: `
		Pomo is a Pomodoro interval timer for the command-line: fixed-length
		focus sessions alternating with short breaks, and a long break after
		every few completed sessions.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of a running timer",
				Action: statusAction,
			},
			{
				Name:   "stats",
				Usage:  "Print completed session counts from the session server",
				Action: statsAction,
			},
		},
		Flags: []cli.Flag{
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			disableNotificationFlag,
			workSoundFlag,
			breakSoundFlag,
			sessionCmdFlag,
			serverFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
