package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/designqa/designqa/internal/adapters/outbound/config"
	"github.com/designqa/designqa/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		force      bool
		minScore   int
		background string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .designqa.yaml configuration file",
		Long:  "Create a .designqa.yaml that spells out every check toggle and threshold at its default value.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absPath, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg := starterConfig(minScore, background)
			if _, err := config.Write(absPath, cfg, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .designqa.yaml")
	cmd.Flags().IntVar(&minScore, "min-score", 70, "Minimum score enforced by analyze --ci")
	cmd.Flags().StringVar(&background, "background", "#FFFFFF", "Background assumed for text without one (empty to leave unknown)")

	return cmd
}

// starterConfig makes every default explicit so users can see what to tune.
func starterConfig(minScore int, background string) domain.ProjectConfig {
	r := domain.DefaultRules()
	on := true
	return domain.ProjectConfig{
		Checks: domain.ChecksConfig{
			Contrast:      &on,
			Typography:    &on,
			Spacing:       &on,
			Alignment:     &on,
			Accessibility: &on,
		},
		Rules: &domain.RuleOverrides{
			MinContrastRatio:       &r.MinContrastRatio,
			LargeTextContrastRatio: &r.LargeTextContrastRatio,
			LargeTextSize:          &r.LargeTextSize,
			MinFontSize:            &r.MinFontSize,
			MaxFontSize:            &r.MaxFontSize,
			MaxFontFamilies:        &r.MaxFontFamilies,
			MinSpacing:             &r.MinSpacing,
			AlignmentTolerance:     &r.AlignmentTolerance,
			RequireAltText:         &r.RequireAltText,
		},
		DefaultBackground: background,
		MinScore:          minScore,
	}
}
