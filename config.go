package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/articlestyle"
	configFileName = "config.yaml"
)

// Config holds runtime settings. Style selections are deliberately absent:
// the committed style always starts from the defaults.
type Config struct {
	PanelWidth   int           `yaml:"panel_width"`
	Mouse        bool          `yaml:"mouse"`
	AltScreen    bool          `yaml:"alt_screen"`
	NoColor      bool          `yaml:"no_color"`
	LogFile      string        `yaml:"log_file"`
	LogLevel     string        `yaml:"log_level"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	UserAgent    string        `yaml:"user_agent"`
}

func DefaultConfig() Config {
	return Config{
		PanelWidth:   44,
		Mouse:        true,
		AltScreen:    true,
		LogLevel:     "info",
		FetchTimeout: 15 * time.Second,
		UserAgent:    "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	}
}

// LoadConfig layers the defaults, the user config file (if present), an
// explicit config file (if given) and environment overrides.
func LoadConfig(explicitPath string) (Config, error) {
	config := DefaultConfig()

	userPath, err := userConfigPath()
	if err == nil {
		if _, statErr := os.Stat(userPath); statErr == nil {
			config, err = loadConfigFromFile(userPath, config)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
			}
		}
	}

	if explicitPath != "" {
		config, err = loadConfigFromFile(explicitPath, config)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
	}

	config = applyEnvOverrides(config)
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func userConfigPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

// loadConfigFromFile decodes path on top of base, so keys missing from the
// file keep base's values.
func loadConfigFromFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	config := base
	if err := yaml.Unmarshal(data, &config); err != nil {
		return base, fmt.Errorf("parse yaml: %w", err)
	}
	return config, nil
}

func applyEnvOverrides(config Config) Config {
	if val := os.Getenv("ARTICLESTYLE_PANEL_WIDTH"); val != "" {
		if w, err := strconv.Atoi(val); err == nil {
			config.PanelWidth = w
		}
	}
	if val := os.Getenv("ARTICLESTYLE_MOUSE"); val != "" {
		config.Mouse = val == "true"
	}
	if val := os.Getenv("ARTICLESTYLE_ALT_SCREEN"); val != "" {
		config.AltScreen = val == "true"
	}
	if val := os.Getenv("ARTICLESTYLE_LOG_FILE"); val != "" {
		config.LogFile = val
	}
	if val := os.Getenv("ARTICLESTYLE_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}
	if val := os.Getenv("ARTICLESTYLE_FETCH_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.FetchTimeout = d
		}
	}
	if val := os.Getenv("ARTICLESTYLE_USER_AGENT"); val != "" {
		config.UserAgent = val
	}
	if val := os.Getenv("ARTICLESTYLE_NO_COLOR"); val != "" {
		config.NoColor = val == "true"
	}
	// https://no-color.org: any value disables color
	if os.Getenv("NO_COLOR") != "" {
		config.NoColor = true
	}

	return config
}

var errInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	if c.PanelWidth < 24 {
		return fmt.Errorf("%w: panel_width must be at least 24, got %d", errInvalidConfig, c.PanelWidth)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: fetch_timeout must be positive", errInvalidConfig)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	return nil
}
