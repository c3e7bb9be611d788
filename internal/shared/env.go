package shared

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables holding the Spotify secrets.
const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
	EnvAccessToken  = "SPOTIFY_ACCESS_TOKEN"
	EnvRefreshToken = "SPOTIFY_REFRESH_TOKEN"
)

// Config holds the Spotify application credentials and user tokens.
//
// It is built once per process and passed explicitly to whatever needs it.
type Config struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
}

type envField struct {
	name string
	set  func(*Config, string)
}

var envFields = []envField{
	{EnvClientID, func(c *Config, v string) { c.ClientID = v }},
	{EnvClientSecret, func(c *Config, v string) { c.ClientSecret = v }},
	{EnvAccessToken, func(c *Config, v string) { c.AccessToken = v }},
	{EnvRefreshToken, func(c *Config, v string) { c.RefreshToken = v }},
}

// LoadConfig loads an optional .env file from the working directory, then reads [Config] from the process environment.
//
// Variables already present in the environment take precedence over the .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to read .env: %v", ErrInvalidConfig, err)
	}
	return LoadEnv(os.Environ())
}

// LoadEnv builds a [Config] from "KEY=value" pairs, matching names case-insensitively.
//
// Every variable must be present and non-empty. The returned error wraps [ErrMissingConfig] and names all missing variables.
func LoadEnv(environ []string) (*Config, error) {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		upper := strings.ToUpper(key)
		// an exact-case match wins over a case-folded one
		if _, seen := values[upper]; seen && key != upper {
			continue
		}
		values[upper] = value
	}

	config := &Config{}
	var missing []string
	for _, field := range envFields {
		value, ok := values[field.name]
		if !ok || value == "" {
			missing = append(missing, field.name)
			continue
		}
		field.set(config, value)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return config, nil
}
