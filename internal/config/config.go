// Package config loads and persists application settings as JSON under
// the user's config directory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/codefionn/taschenrechner/internal/consts"
)

// Config represents application configuration
type Config struct {
	Theme       string `json:"theme"`        // "dark" or "light"
	EnableMouse bool   `json:"enable_mouse"` // react to button clicks
	ShowTape    bool   `json:"show_tape"`    // side panel with evaluation history
	TapeLimit   int    `json:"tape_limit"`   // in-memory tape entries kept
	LogLevel    string `json:"log_level"`    // debug, info, warn, error, none
	LogPath     string `json:"-"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, consts.AppName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", consts.AppName)
	default:
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, consts.AppName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", consts.AppName)
	}
}

func defaultStateDir() string {
	switch runtime.GOOS {
	case "windows":
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, consts.AppName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Local", consts.AppName)
	default:
		if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, consts.AppName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "state", consts.AppName)
	}
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:       "dark",
		EnableMouse: true,
		ShowTape:    true,
		TapeLimit:   consts.DefaultTapeLimit,
		LogLevel:    "info",
		LogPath:     filepath.Join(defaultStateDir(), consts.AppName+".log"),
	}
}

// Load loads configuration from file, falling back to defaults for a
// missing file and backfilling fields a partial file leaves empty.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if config.Theme == "" {
		config.Theme = "dark"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogPath == "" {
		config.LogPath = filepath.Join(defaultStateDir(), consts.AppName+".log")
	}
	if config.TapeLimit <= 0 {
		config.TapeLimit = consts.DefaultTapeLimit
	}
	if config.TapeLimit > consts.MaxTapeLimit {
		config.TapeLimit = consts.MaxTapeLimit
	}

	return config, nil
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetConfigPath returns the default config path
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}
