// Package config provides configuration loading for wiki using TOML.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Laisky/errors/v2"
)

// HTTP fetching settings
type Fetcher struct {
	UserAgent      string `toml:"userAgent"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
}

// Search settings
type Search struct {
	Limit int `toml:"limit"` // clamped to 1..10
}

// Display settings
type Display struct {
	Theme string `toml:"theme"`
	Color bool   `toml:"color"`
	Wrap  bool   `toml:"wrap"`
	Width int    `toml:"width"` // 0 = terminal width
}

// Log settings
type Log struct {
	Level string `toml:"level"`
}

// Config is the main configuration struct
type Config struct {
	Fetcher Fetcher `toml:"fetcher"`
	Search  Search  `toml:"search"`
	Display Display `toml:"display"`
	Log     Log     `toml:"log"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Fetcher: Fetcher{
			UserAgent:      "wiki/1.0 (Terminal Wikipedia reader)",
			TimeoutSeconds: 15,
		},
		Search: Search{
			Limit: 10,
		},
		Display: Display{
			Theme: "classic",
			Color: true,
			Wrap:  true,
			Width: 0,
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wiki"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration from path, layering it on top of defaults. An
// empty path means the user config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, nil // Return defaults if we can't determine path
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var user Config
	md, err := toml.DecodeFile(path, &user)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config from %s", path)
	}

	return merge(cfg, &user, md), nil
}

// merge layers user config on top of defaults. Strings and numbers override
// when non-zero; booleans override when the key is present in the file.
func merge(defaults, user *Config, md toml.MetaData) *Config {
	result := *defaults

	// Fetcher
	if user.Fetcher.UserAgent != "" {
		result.Fetcher.UserAgent = user.Fetcher.UserAgent
	}
	if user.Fetcher.TimeoutSeconds > 0 {
		result.Fetcher.TimeoutSeconds = user.Fetcher.TimeoutSeconds
	}

	// Search
	if user.Search.Limit > 0 {
		result.Search.Limit = min(user.Search.Limit, 10)
	}

	// Display
	if user.Display.Theme != "" {
		result.Display.Theme = user.Display.Theme
	}
	if md.IsDefined("display", "color") {
		result.Display.Color = user.Display.Color
	}
	if md.IsDefined("display", "wrap") {
		result.Display.Wrap = user.Display.Wrap
	}
	if user.Display.Width > 0 {
		result.Display.Width = user.Display.Width
	}

	// Log
	if user.Log.Level != "" {
		result.Log.Level = user.Log.Level
	}

	return &result
}

// DefaultTOML returns the default configuration as a TOML string.
// Used for --init-config to generate a user config file.
func DefaultTOML() string {
	return `# wiki configuration
# Save to ~/.config/wiki/config.toml and customize
# Only include settings you want to change from defaults

# HTTP fetching settings
[fetcher]
userAgent = "wiki/1.0 (Terminal Wikipedia reader)"
timeoutSeconds = 15

# Search settings
[search]
limit = 10                    # Results offered for selection (at most 10)

# Display settings
[display]
theme = "classic"             # "classic", "dusk" or "mono"
color = true                  # Colour output when writing to a terminal
wrap = true                   # Word-wrap paragraphs to the display width
width = 0                     # Display width (0 = terminal width)

# Diagnostics on stderr
[log]
level = "warn"                # "debug", "info", "warn" or "error"
`
}
