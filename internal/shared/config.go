package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

//go:embed settings.example.toml
var exampleSettings []byte

// DefaultSettingsPath is the settings file looked up in the working directory.
const DefaultSettingsPath = "spotifyexp.toml"

// MaxLimit is the largest page size the Spotify Web API accepts.
const MaxLimit = 50

// Settings holds the non-secret options loaded from a TOML file.
//
// Secrets never live here, they come from the environment (see [Config]).
type Settings struct {
	API APISettings `toml:"api"`
	Log LogSettings `toml:"log"`
}

// APISettings controls where and how requests are sent.
type APISettings struct {
	BaseURL           string  `toml:"base_url"`
	AccountsURL       string  `toml:"accounts_url"`
	Market            string  `toml:"market"`
	Limit             int     `toml:"limit"`
	RequestsPerSecond float64 `toml:"requests_per_second"` // 0 disables pacing
}

// LogSettings controls the stderr logger.
type LogSettings struct {
	Level string `toml:"level"`
}

// DefaultSettings returns Settings with sensible defaults loaded from the embedded example file.
func DefaultSettings() *Settings {
	var settings Settings
	if err := toml.Unmarshal(exampleSettings, &settings); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default settings: %v", err))
	}
	return &settings
}

// LoadSettings reads a TOML settings file on top of [DefaultSettings], so keys absent from the file keep their defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: failed to parse settings: %v", ErrInvalidConfig, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url must not be empty", ErrInvalidConfig)
	}
	if s.API.AccountsURL == "" {
		return fmt.Errorf("%w: api.accounts_url must not be empty", ErrInvalidConfig)
	}
	if s.API.Limit < 1 || s.API.Limit > MaxLimit {
		return fmt.Errorf("%w: api.limit must be between 1 and %d, got %d", ErrInvalidConfig, MaxLimit, s.API.Limit)
	}
	if s.API.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: api.requests_per_second must not be negative", ErrInvalidConfig)
	}
	if _, err := s.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured level, defaulting to info when unset.
func (s *Settings) LogLevel() (log.Level, error) {
	if strings.TrimSpace(s.Log.Level) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return level, nil
}

// CreateSettingsFile writes the embedded example settings to path, refusing to overwrite.
func CreateSettingsFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleSettings, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
