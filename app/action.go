package app

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/demilade/pomo/internal/config"
	"github.com/demilade/pomo/internal/log"
	"github.com/demilade/pomo/internal/ui"
	"github.com/demilade/pomo/sync"
	"github.com/demilade/pomo/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// beforeAction initialises file paths and logging before any command runs.
func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	log.Init(config.LogFilePath())

	if ctx.Bool("no-color") ||
		firstNonEmptyString(
			os.Getenv(envNoColor),
			os.Getenv(envPomoNoColor),
		) != "" {
		disableStyling()
	}

	return nil
}

// loadConfig assembles the configuration from the config file and CLI
// flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// defaultAction runs the timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Settings.DarkTheme

	return timer.Run(cfg)
}

// statusAction reports on a timer running in another terminal.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus()
}

// statsAction prints the completed-session counters from the session
// server.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if !cfg.Sync.Enabled {
		pterm.Info.Println(
			"No session server configured. Set sync.server_url or pass --server.",
		)

		return nil
	}

	client := sync.NewClient(cfg.Sync.ServerURL)

	tctx, cancel := context.WithTimeout(ctx.Context, 10*time.Second)
	defer cancel()

	stats, err := client.Stats(tctx)
	if err != nil {
		return err
	}

	pterm.Printfln(
		"Sessions completed today: %s",
		ui.Green(stats.TodaySessions),
	)
	pterm.Printfln(
		"Sessions completed in total: %s",
		ui.Highlight(stats.TotalSessions),
	)

	return nil
}

// editConfigAction opens the config file in the user's editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"
	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
