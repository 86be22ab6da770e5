package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyWorkDuration         = "work.duration"
	keyWorkMessage          = "work.message"
	keyWorkSound            = "work.sound"
	keyWorkColor            = "work.color"
	keyShortBreakDuration   = "short_break.duration"
	keyShortBreakMessage    = "short_break.message"
	keyShortBreakSound      = "short_break.sound"
	keyShortBreakColor      = "short_break.color"
	keyLongBreakDuration    = "long_break.duration"
	keyLongBreakMessage     = "long_break.message"
	keyLongBreakSound       = "long_break.sound"
	keyLongBreakColor       = "long_break.color"
	keyLongBreakInterval    = "settings.long_break_interval"
	keyAutoStartWork        = "settings.auto_start_work"
	keyAutoStartBreak       = "settings.auto_start_break"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
	keyNotificationsEnabled = "notifications.enabled"
	keySyncEnabled          = "sync.enabled"
	keySyncServerURL        = "sync.server_url"
)

const (
	defaultWorkDuration       = 25 * time.Minute
	defaultShortBreakDuration = 5 * time.Minute
	defaultLongBreakDuration  = 15 * time.Minute
	defaultLongBreakInterval  = 4
)

// WithViperConfig returns an Option that loads configuration from the YAML
// config file, creating the file on first run.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		// First run: let the user adjust the core settings before the
		// file is written.
		if os.Getenv("POMO_ENV") != "testing" {
			if perr := promptSettings(v); perr != nil {
				return perr
			}
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyWorkDuration, defaultWorkDuration.String())
	v.SetDefault(keyWorkMessage, "Focus on your task")
	v.SetDefault(keyWorkColor, "#B0DB43")
	v.SetDefault(keyWorkSound, "")
	v.SetDefault(keyShortBreakDuration, defaultShortBreakDuration.String())
	v.SetDefault(keyShortBreakMessage, "Take a breather")
	v.SetDefault(keyShortBreakColor, "#12EAEA")
	v.SetDefault(keyShortBreakSound, "")
	v.SetDefault(keyLongBreakDuration, defaultLongBreakDuration.String())
	v.SetDefault(keyLongBreakMessage, "Take a long break")
	v.SetDefault(keyLongBreakColor, "#C492B1")
	v.SetDefault(keyLongBreakSound, "")
	v.SetDefault(keyLongBreakInterval, defaultLongBreakInterval)
	v.SetDefault(keyAutoStartBreak, true)
	v.SetDefault(keyAutoStartWork, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySyncEnabled, false)
	v.SetDefault(keySyncServerURL, "")
}

// loadViperConfig copies the resolved Viper values into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := loadDurations(v, c); err != nil {
		return err
	}

	c.Work.Message = v.GetString(keyWorkMessage)
	c.Work.Color = v.GetString(keyWorkColor)
	c.Work.Sound = v.GetString(keyWorkSound)

	c.ShortBreak.Message = v.GetString(keyShortBreakMessage)
	c.ShortBreak.Color = v.GetString(keyShortBreakColor)
	c.ShortBreak.Sound = v.GetString(keyShortBreakSound)

	c.LongBreak.Message = v.GetString(keyLongBreakMessage)
	c.LongBreak.Color = v.GetString(keyLongBreakColor)
	c.LongBreak.Sound = v.GetString(keyLongBreakSound)

	c.Settings.LongBreakInterval = v.GetInt(keyLongBreakInterval)
	c.Settings.AutoStartWork = v.GetBool(keyAutoStartWork)
	c.Settings.AutoStartBreak = v.GetBool(keyAutoStartBreak)
	c.Settings.Cmd = v.GetString(keySessionCmd)
	c.Settings.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Settings.DarkTheme = v.GetBool(keyDarkTheme)

	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)

	c.Sync.Enabled = v.GetBool(keySyncEnabled)
	c.Sync.ServerURL = v.GetString(keySyncServerURL)

	return nil
}

// loadDurations parses the duration strings from Viper.
func loadDurations(v *viper.Viper, c *Config) error {
	durations := map[string]string{
		"work":        v.GetString(keyWorkDuration),
		"short break": v.GetString(keyShortBreakDuration),
		"long break":  v.GetString(keyLongBreakDuration),
	}

	for name, durStr := range durations {
		dur, err := parseDuration(durStr)
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

	return nil
}

// parseDuration accepts Go duration strings, falling back to treating a bare
// number as minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "m")
}
