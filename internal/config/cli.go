package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration overrides.
type CLIOptions struct {
	Work              string
	ShortBreak        string
	LongBreak         string
	BreakSound        string
	WorkSound         string
	SessionCmd        string
	ServerURL         string
	LongBreakInterval uint
	DisableNotify     bool
}

// WithCLIConfig returns an Option that overlays CLI flag values on top of
// the file-based configuration.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:              ctx.String("work"),
			ShortBreak:        ctx.String("short-break"),
			LongBreak:         ctx.String("long-break"),
			LongBreakInterval: ctx.Uint("long-break-interval"),
			BreakSound:        ctx.String("break-sound"),
			WorkSound:         ctx.String("work-sound"),
			SessionCmd:        ctx.String("session-cmd"),
			ServerURL:         ctx.String("server"),
			DisableNotify:     ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.ServerURL != "" {
		c.Sync.Enabled = true
		c.Sync.ServerURL = opts.ServerURL
	}

	applyCLISounds(c, opts)

	return nil
}

// applyCLIDurations handles parsing and applying duration flags.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	durations := map[string]string{
		"work":        opts.Work,
		"short break": opts.ShortBreak,
		"long break":  opts.LongBreak,
	}

	for name, durStr := range durations {
		if durStr == "" {
			continue
		}

		dur, err := time.ParseDuration(durStr)
		if err != nil {
			return errInvalidCLIDuration.Fmt(name, err)
		}

		switch name {
		case "work":
			c.Work.Duration = dur
		case "short break":
			c.ShortBreak.Duration = dur
		case "long break":
			c.LongBreak.Duration = dur
		}
	}

	if opts.LongBreakInterval > 0 {
		c.Settings.LongBreakInterval = int(opts.LongBreakInterval)
	}

	return nil
}

// applyCLISounds handles the sound override flags. The value "off" silences
// the corresponding alert.
func applyCLISounds(c *Config, opts CLIOptions) {
	if opts.BreakSound != "" {
		if opts.BreakSound == "off" {
			c.ShortBreak.Sound = ""
			c.LongBreak.Sound = ""
		} else {
			c.ShortBreak.Sound = opts.BreakSound
			c.LongBreak.Sound = opts.BreakSound
		}
	}

	if opts.WorkSound != "" {
		if opts.WorkSound == "off" {
			c.Work.Sound = ""
		} else {
			c.Work.Sound = opts.WorkSound
		}
	}
}
