package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/designqa/designqa/internal/adapters/outbound/tui"
	"github.com/designqa/designqa/internal/application"
	"github.com/designqa/designqa/internal/domain"
)

func newRulesCmd(opts *globalOptions) *cobra.Command {
	var (
		jsonOutput bool
		checks     string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the active checks and thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := application.ParseChecks(checks)
			if err != nil {
				return err
			}
			a, err := newApp(opts, "warn")
			if err != nil {
				return err
			}
			defer a.close()

			cc := a.svc.Checks(overrides)
			if jsonOutput {
				return renderJSON(cmd, struct {
					Checks domain.CheckConfiguration `json:"checks"`
					Rules  domain.Rules              `json:"rules"`
				}{cc, a.svc.Rules()})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(a.svc.Rules(), cc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")
	cmd.Flags().StringVar(&checks, "checks", "", "Comma-separated categories to show as enabled")
	return cmd
}
