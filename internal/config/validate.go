package config

import (
	"net/url"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"
)

var (
	// Duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	// Long break interval constraints.
	minLongBreakInterval = 2
	maxLongBreakInterval = 10

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateSessionConfig(c.Work, "work"); err != nil {
		return err
	}

	if err := validateSessionConfig(c.ShortBreak, "short break"); err != nil {
		return err
	}

	if err := validateSessionConfig(c.LongBreak, "long break"); err != nil {
		return err
	}

	if err := c.validateSessionRelationships(); err != nil {
		return err
	}

	return c.validateSettings()
}

// validateSessionConfig validates an individual SessionConfig.
func validateSessionConfig(sc SessionConfig, name string) error {
	if sc.Duration < minSessionDuration || sc.Duration > maxSessionDuration {
		return errInvalidDuration.Fmt(
			name,
			minSessionDuration,
			maxSessionDuration,
		)
	}

	if strings.TrimSpace(sc.Message) == "" {
		return errEmptyMsg.Fmt(name)
	}

	if !hexColorRegex.MatchString(sc.Color) {
		return errInvalidColor.Fmt(name, sc.Color)
	}

	if sc.Sound != "" {
		ext := strings.ToLower(filepath.Ext(sc.Sound))
		if !slices.Contains(validSoundExts, ext) {
			return errInvalidSoundFormat.Fmt(sc.Sound)
		}
	}

	return nil
}

// validateSessionRelationships validates logical relationships between
// sessions.
func (c *Config) validateSessionRelationships() error {
	if c.ShortBreak.Duration >= c.Work.Duration {
		return errShortBreakTooLong.Fmt(
			c.ShortBreak.Duration,
			c.Work.Duration,
		)
	}

	if c.LongBreak.Duration < c.ShortBreak.Duration {
		return errLongBreakTooShort.Fmt(
			c.LongBreak.Duration,
			c.ShortBreak.Duration,
		)
	}

	return nil
}

func (c *Config) validateSettings() error {
	if c.Settings.LongBreakInterval < minLongBreakInterval ||
		c.Settings.LongBreakInterval > maxLongBreakInterval {
		return errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
		)
	}

	if c.Sync.Enabled {
		u, err := url.Parse(c.Sync.ServerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errInvalidServerURL.Fmt(c.Sync.ServerURL)
		}
	}

	return nil
}
