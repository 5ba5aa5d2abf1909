package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv isolates a test from credentials present in the developer's shell
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"SUPABASE_URL", "SUPABASE_KEY", "GOOGLE_API_KEY",
		"CHATDO_MODEL", "CHATDO_PROXY", "CHATDO_CONFIG", "CHATDO_THEME_FILE",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "ctrl+c" {
		t.Errorf("Default Quit key = %s, want ctrl+c", defaults.Quit)
	}
	if defaults.Submit != "enter" {
		t.Errorf("Default Submit key = %s, want enter", defaults.Submit)
	}
	if defaults.NextPage != "tab" {
		t.Errorf("Default NextPage key = %s, want tab", defaults.NextPage)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Store.Driver != DriverSupabase {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, DriverSupabase)
	}
	if cfg.Store.Table != "todos" {
		t.Errorf("Store.Table = %q, want todos", cfg.Store.Table)
	}
	if cfg.LLM.Model != DefaultModel {
		t.Errorf("LLM.Model = %q, want %q", cfg.LLM.Model, DefaultModel)
	}
	if cfg.LLM.ToolChoice != "required" {
		t.Errorf("LLM.ToolChoice = %q, want required", cfg.LLM.ToolChoice)
	}
	if cfg.LLM.MaxTurns != DefaultMaxTurns {
		t.Errorf("LLM.MaxTurns = %d, want %d", cfg.LLM.MaxTurns, DefaultMaxTurns)
	}
	if cfg.KeyMappings.Quit != "ctrl+c" {
		t.Errorf("Loaded config Quit key = %s, want ctrl+c (default)", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Accent != "#874BFD" {
		t.Errorf("Accent = %s, want default preset", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `store:
  url: https://example.supabase.co
  key: anon-key
llm:
  api_key: llm-key
  model: gemini-2.0-flash
  timeout: 30s
key_mappings:
  quit: "ctrl+q"
theme:
  preset: monochrome
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Store.URL != "https://example.supabase.co" {
		t.Errorf("Store.URL = %q", cfg.Store.URL)
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("LLM.Model = %q, want gemini-2.0-flash", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("LLM.Timeout = %v, want 30s", cfg.LLM.Timeout)
	}
	if cfg.KeyMappings.Quit != "ctrl+q" {
		t.Errorf("Loaded Quit key = %s, want ctrl+q", cfg.KeyMappings.Quit)
	}
	// Unset keys keep their defaults
	if cfg.KeyMappings.Submit != "enter" {
		t.Errorf("Submit key = %s, want enter", cfg.KeyMappings.Submit)
	}
	if cfg.ColorScheme.Accent != "#FFFFFF" {
		t.Errorf("Accent = %s, want monochrome accent", cfg.ColorScheme.Accent)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "chatdo.yaml")
	if err := os.WriteFile(configPath, []byte("llm:\n  model: from-env-path\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("CHATDO_CONFIG", configPath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LLM.Model != "from-env-path" {
		t.Errorf("LLM.Model = %q, want from-env-path", cfg.LLM.Model)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("store:\n  url: https://file.example\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("SUPABASE_URL", "https://env.example")
	t.Setenv("SUPABASE_KEY", "env-key")
	t.Setenv("GOOGLE_API_KEY", "env-llm-key")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Store.URL != "https://env.example" {
		t.Errorf("Store.URL = %q, want env value", cfg.Store.URL)
	}
	if cfg.Store.Key != "env-key" {
		t.Errorf("Store.Key = %q, want env value", cfg.Store.Key)
	}
	if cfg.LLM.APIKey != "env-llm-key" {
		t.Errorf("LLM.APIKey = %q, want env value", cfg.LLM.APIKey)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("store: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("Load() with invalid YAML should fail")
	}
}

func TestValidateMissingEverything(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	err = cfg.Validate()
	if !errors.Is(err, ErrMissingConfig) {
		t.Fatalf("Validate() = %v, want ErrMissingConfig", err)
	}
	for _, name := range []string{"SUPABASE_URL", "SUPABASE_KEY", "GOOGLE_API_KEY"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Validate() error %q does not name %s", err, name)
		}
	}
}

func TestValidateSQLiteNeedsOnlyLLMKey(t *testing.T) {
	cfg := Default()
	cfg.Store.Driver = DriverSQLite

	err := cfg.Validate()
	if !errors.Is(err, ErrMissingConfig) {
		t.Fatalf("Validate() = %v, want ErrMissingConfig", err)
	}
	if strings.Contains(err.Error(), "SUPABASE") {
		t.Errorf("sqlite driver should not require Supabase credentials: %v", err)
	}

	cfg.LLM.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cfg := Default()
	cfg.Store.Driver = "mongo"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with unknown driver should fail")
	}

	cfg = Default()
	cfg.Store.URL, cfg.Store.Key, cfg.LLM.APIKey = "u", "k", "a"
	cfg.LLM.ToolChoice = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with unknown tool_choice should fail")
	}
}

func TestThemeFileLoading(t *testing.T) {
	clearEnv(t)

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	themeContent := `theme:
  accent: "#FF0000"
  error_fg: "#00FF00"
`
	if err := os.WriteFile(themePath, []byte(themeContent), 0o644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}
	t.Setenv("CHATDO_THEME_FILE", themePath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.ErrorFg != "#00FF00" {
		t.Errorf("ErrorFg = %s, want #00FF00", cfg.ColorScheme.ErrorFg)
	}
	// Untouched colors come from the default preset
	if cfg.ColorScheme.Subtle != "#585858" {
		t.Errorf("Subtle = %s, want #585858", cfg.ColorScheme.Subtle)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.SetPath(configPath)
	cfg.Store.URL = "https://saved.example"
	cfg.Store.Key = "saved-key"
	cfg.LLM.APIKey = "saved-llm"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Store.URL != "https://saved.example" || loaded.LLM.APIKey != "saved-llm" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.LLM.Timeout != DefaultTimeout {
		t.Errorf("LLM.Timeout = %v, want %v", loaded.LLM.Timeout, DefaultTimeout)
	}
}

func TestResolveColorScheme(t *testing.T) {
	for _, name := range PresetNames {
		scheme := ResolveColorScheme(name)
		if scheme.Preset != name {
			t.Errorf("ResolveColorScheme(%q).Preset = %q", name, scheme.Preset)
		}
		if scheme.Accent == "" || scheme.ErrorFg == "" || scheme.CardBorder == "" {
			t.Errorf("ResolveColorScheme(%q) left colors empty: %+v", name, scheme)
		}
	}

	if ResolveColorScheme("monochrome").Accent == ResolveColorScheme("default").Accent {
		t.Error("monochrome and default presets should differ")
	}

	unknown := ResolveColorScheme("neon")
	if unknown.Accent != ResolveColorScheme("default").Accent {
		t.Errorf("unknown preset should fall back to default, got %+v", unknown)
	}
}
