package huhforms

import (
	"errors"
	"path/filepath"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/chatdo/internal/config"
)

// SetupAnswers holds the values collected by the setup form
type SetupAnswers struct {
	Driver      string
	SupabaseURL string
	SupabaseKey string
	SQLitePath  string
	APIKey      string
	Model       string
	Theme       string
	Confirm     bool
}

// AnswersFrom seeds the form with the values already in cfg
func AnswersFrom(cfg *config.Config) *SetupAnswers {
	return &SetupAnswers{
		Driver:      cfg.Store.Driver,
		SupabaseURL: cfg.Store.URL,
		SupabaseKey: cfg.Store.Key,
		SQLitePath:  cfg.Store.Path,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Theme:       cfg.ColorScheme.Preset,
		Confirm:     true,
	}
}

// Apply copies the answers into cfg. Blank answers keep the current value.
func (a *SetupAnswers) Apply(cfg *config.Config) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&cfg.Store.Driver, a.Driver)
	set(&cfg.Store.URL, a.SupabaseURL)
	set(&cfg.Store.Key, a.SupabaseKey)
	set(&cfg.Store.Path, a.SQLitePath)
	set(&cfg.LLM.APIKey, a.APIKey)
	set(&cfg.LLM.Model, a.Model)

	// a new preset replaces the palette, dropping per-color overrides
	if theme := strings.TrimSpace(a.Theme); theme != "" && theme != cfg.ColorScheme.Preset {
		cfg.ColorScheme = config.ResolveColorScheme(theme)
	}

	if cfg.Store.Driver == config.DriverSQLite && cfg.Store.Path == "" {
		if dir, err := config.DataDir(); err == nil {
			cfg.Store.Path = filepath.Join(dir, "todos.db")
		}
	}
}

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

// CreateSetupForm creates the first-run form that writes the config file
func CreateSetupForm(answers *SetupAnswers, theme huh.Theme) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("driver").
				Title("Task store").
				Options(
					huh.NewOption("Supabase (hosted)", config.DriverSupabase),
					huh.NewOption("SQLite (local file)", config.DriverSQLite),
				).
				Value(&answers.Driver),
		),

		huh.NewGroup(
			huh.NewInput().
				Key("supabase_url").
				Title("Supabase URL").
				Placeholder("https://<project>.supabase.co").
				Validate(required("Supabase URL")).
				Value(&answers.SupabaseURL),
			huh.NewInput().
				Key("supabase_key").
				Title("Supabase key").
				EchoMode(huh.EchoModePassword).
				Validate(required("Supabase key")).
				Value(&answers.SupabaseKey),
		).WithHideFunc(func() bool { return answers.Driver != config.DriverSupabase }),

		huh.NewGroup(
			huh.NewInput().
				Key("sqlite_path").
				Title("Database file").
				Placeholder("~/.chatdo/todos.db").
				Value(&answers.SQLitePath),
		).WithHideFunc(func() bool { return answers.Driver != config.DriverSQLite }),

		huh.NewGroup(
			huh.NewInput().
				Key("api_key").
				Title("Google API key").
				EchoMode(huh.EchoModePassword).
				Validate(required("API key")).
				Value(&answers.APIKey),
			huh.NewInput().
				Key("model").
				Title("Model").
				Placeholder(config.DefaultModel).
				Value(&answers.Model),
			huh.NewSelect[string]().
				Key("theme").
				Title("Color theme").
				Options(huh.NewOptions(config.PresetNames...)...).
				Value(&answers.Theme),
			huh.NewConfirm().
				Key("confirm").
				Title("Save this configuration?").
				Affirmative("Yes").
				Negative("No").
				Value(&answers.Confirm),
		),
	)

	return form.WithTheme(theme)
}
