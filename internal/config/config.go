package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Store drivers
const (
	DriverSupabase = "supabase"
	DriverSQLite   = "sqlite"
)

// Defaults for the interpreter backend. The base URL is Gemini's
// OpenAI-compatible endpoint.
const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel      = "gemini-1.5-flash"
	DefaultToolChoice = "required"
	DefaultMaxTurns   = 10
	DefaultTable      = "todos"
	DefaultTimeout    = 60 * time.Second
)

// ErrMissingConfig is returned by Validate when a required value is absent
var ErrMissingConfig = errors.New("missing configuration")

// Config represents the application configuration
type Config struct {
	Store       StoreConfig `yaml:"store"`
	LLM         LLMConfig   `yaml:"llm"`
	Log         LogConfig   `yaml:"log"`
	Proxy       string      `yaml:"proxy,omitempty"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`

	// path the config was loaded from, used by Save
	path string
}

// StoreConfig selects and configures the task table backend
type StoreConfig struct {
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
	Key    string `yaml:"key"`
	Table  string `yaml:"table"`
	// Path is the SQLite database file, only read by the sqlite driver
	Path string `yaml:"path,omitempty"`
}

// LLMConfig configures the OpenAI-compatible chat-completions backend
type LLMConfig struct {
	BaseURL    string        `yaml:"base_url"`
	APIKey     string        `yaml:"api_key"`
	Model      string        `yaml:"model"`
	ToolChoice string        `yaml:"tool_choice"`
	MaxTurns   int           `yaml:"max_turns"`
	Timeout    time.Duration `yaml:"timeout"`
}

// LogConfig configures the slog handlers
type LogConfig struct {
	Level   string `yaml:"level"`
	Journal bool   `yaml:"journal"`
}

// Default returns a config populated with every default value
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from CHATDO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("CHATDO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		mergeTheme(&config.ColorScheme, themeConfig.Theme)
	}
}

// mergeTheme overrides dst with every non-empty value of src
func mergeTheme(dst *ColorScheme, src ColorScheme) {
	if src.Preset != "" {
		*dst = ColorScheme{Preset: src.Preset}
	}
	for _, pair := range []struct {
		to   *string
		from string
	}{
		{&dst.Accent, src.Accent},
		{&dst.Assistant, src.Assistant},
		{&dst.CardBorder, src.CardBorder},
		{&dst.Title, src.Title},
		{&dst.Subtle, src.Subtle},
		{&dst.Normal, src.Normal},
		{&dst.InfoFg, src.InfoFg},
		{&dst.InfoBg, src.InfoBg},
		{&dst.WarningFg, src.WarningFg},
		{&dst.WarningBg, src.WarningBg},
		{&dst.ErrorFg, src.ErrorFg},
		{&dst.ErrorBg, src.ErrorBg},
	} {
		if pair.from != "" {
			*pair.to = pair.from
		}
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error: defaults and environment overrides
// still apply. Load does not validate; call Validate before serving.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CHATDO_CONFIG")
	}
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			path = ""
		}
	}

	config := &Config{path: path}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		default:
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()

	return config, nil
}

// applyEnv overrides file values with the environment. The variable names
// match the secrets the hosted deployment provides.
func (c *Config) applyEnv() {
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Store.URL = v
	}
	if v := os.Getenv("SUPABASE_KEY"); v != "" {
		c.Store.Key = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("CHATDO_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("CHATDO_PROXY"); v != "" {
		c.Proxy = v
	}
}

// Validate reports every required value that is missing. The returned error
// wraps ErrMissingConfig.
func (c *Config) Validate() error {
	var missing []string

	switch c.Store.Driver {
	case DriverSupabase:
		if c.Store.URL == "" {
			missing = append(missing, "SUPABASE_URL")
		}
		if c.Store.Key == "" {
			missing = append(missing, "SUPABASE_KEY")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.LLM.APIKey == "" {
		missing = append(missing, "GOOGLE_API_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: please set %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	switch c.LLM.ToolChoice {
	case "auto", "required", "none":
	default:
		return fmt.Errorf("invalid tool_choice %q: want auto, required or none", c.LLM.ToolChoice)
	}

	return nil
}

// Path returns the file the config was loaded from (or will be saved to)
func (c *Config) Path() string {
	return c.path
}

// SetPath changes the file Save writes to
func (c *Config) SetPath(path string) {
	c.path = path
}

// Save saves the config to its path. The file holds credentials, so it is
// written with owner-only permissions.
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

// DataDir returns ~/.chatdo, home of the log file and the SQLite database
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".chatdo"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "chatdo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "chatdo", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Store.Driver == "" {
		c.Store.Driver = DriverSupabase
	}
	if c.Store.Table == "" {
		c.Store.Table = DefaultTable
	}
	if c.Store.Driver == DriverSQLite && c.Store.Path == "" {
		if dir, err := DataDir(); err == nil {
			c.Store.Path = filepath.Join(dir, "todos.db")
		}
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = DefaultBaseURL
	}
	if c.LLM.Model == "" {
		c.LLM.Model = DefaultModel
	}
	if c.LLM.ToolChoice == "" {
		c.LLM.ToolChoice = DefaultToolChoice
	}
	if c.LLM.MaxTurns <= 0 {
		c.LLM.MaxTurns = DefaultMaxTurns
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = DefaultTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
