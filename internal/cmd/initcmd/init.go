// Package initcmd provides the init command for dtag.
package initcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/doctag/internal/config"
	"github.com/open-doc-collective/doctag/pkg/tag"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize dtag configuration",
		Long: `Initialize dtag with your preferred defaults.

This command will guide you through choosing a default output format and
an expansion depth limit. The configuration will be saved to
~/.config/dtag/config.yml; abbreviations can be added there afterwards.`,
		Example: `  # Interactive setup
  dtag init

  # Pre-select the output format
  dtag init --format html`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(formatName)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", "default output format (html, markdown, plain)")

	return cmd
}

func runInit(prefillFormat string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{}
	if prefillFormat != "" {
		cfg.Format = prefillFormat
	}
	maxDepth := strconv.Itoa(tag.DefaultMaxDepth)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output format").
				Description("Used by 'dtag expand' when --format is not given").
				Options(
					huh.NewOption("HTML", "html"),
					huh.NewOption("Markdown", "markdown"),
					huh.NewOption("Plain text", "plain"),
				).
				Value(&cfg.Format),

			huh.NewInput().
				Title("Maximum expansion depth").
				Description("Limit for recursively nested tag parameters").
				Value(&maxDepth).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("initialization aborted: %w", err)
	}

	cfg.MaxDepth, _ = strconv.Atoi(maxDepth)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}
