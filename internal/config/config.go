// Package config is responsible for assembling the program configuration
// from the config file and command-line arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work          SessionConfig
		ShortBreak    SessionConfig
		LongBreak     SessionConfig
		Settings      SettingsConfig
		Notifications NotificationConfig
		Sync          SyncConfig
	}

	// SessionConfig holds the settings for a single session kind.
	SessionConfig struct {
		Duration time.Duration
		Message  string
		Color    string
		Sound    string
	}

	// SettingsConfig holds general timer behaviour settings.
	SettingsConfig struct {
		LongBreakInterval int
		AutoStartWork     bool
		AutoStartBreak    bool
		Cmd               string
		TwentyFourHour    bool
		DarkTheme         bool
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// SyncConfig holds the settings for reporting completed sessions to a
	// remote server.
	SyncConfig struct {
		Enabled   bool
		ServerURL string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

var (
	configDir      = "pomo"
	configFileName = "config.yml"
	statusFileName = "status.json"
	logFileName    = "pomo.log"

	configFilePath string
	statusFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func ConfigFilePath() string {
	return configFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the config, status, and log file locations. A
// POMO_ENV value suffixes the filenames so test runs do not clobber real
// settings.
func InitializePaths() {
	pomoEnv := strings.TrimSpace(os.Getenv("POMO_ENV"))
	if pomoEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", pomoEnv)
		statusFileName = fmt.Sprintf("status_%s.json", pomoEnv)
		logFileName = fmt.Sprintf("pomo_%s.log", pomoEnv)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(
		filepath.Join(configDir, configFileName),
	)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	statusFilePath = filepath.Join(dataDir, statusFileName)
	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a Config, applies the provided options in order, and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
