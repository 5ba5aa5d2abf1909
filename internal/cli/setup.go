package cli

import (
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chatdo/internal/tui/huhforms"
)

// ErrSetupAborted is returned when the user declines to save the form
var ErrSetupAborted = errors.New("setup aborted")

// InitCmd returns the command that writes the config file
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or update the config file",
		Long: `Walk through the store and model settings and save them to the config file.

Pass --no-input with flags to write the file without prompting.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("no-input", false, "Do not prompt; use flag values only")
	cmd.Flags().String("driver", "", "Task store: supabase or sqlite")
	cmd.Flags().String("supabase-url", "", "Supabase project URL")
	cmd.Flags().String("supabase-key", "", "Supabase API key")
	cmd.Flags().String("sqlite-path", "", "SQLite database file")
	cmd.Flags().String("api-key", "", "Google API key")
	cmd.Flags().String("model", "", "Model name")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	answers := huhforms.AnswersFrom(cfg)
	for flag, dst := range map[string]*string{
		"driver":       &answers.Driver,
		"supabase-url": &answers.SupabaseURL,
		"supabase-key": &answers.SupabaseKey,
		"sqlite-path":  &answers.SQLitePath,
		"api-key":      &answers.APIKey,
		"model":        &answers.Model,
	} {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			*dst = v
		}
	}

	noInput, _ := cmd.Flags().GetBool("no-input")
	if !noInput {
		form := huhforms.CreateSetupForm(answers, huhforms.CreateTheme(cfg.ColorScheme))
		if err := form.RunWithContext(cmd.Context()); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrSetupAborted
			}
			return err
		}
		if !answers.Confirm {
			return ErrSetupAborted
		}
	}

	answers.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", cfg.Path())
	return nil
}
