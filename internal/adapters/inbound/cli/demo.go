package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/designqa/designqa/internal/adapters/outbound/sample"
	"github.com/designqa/designqa/internal/adapters/outbound/tui"
	"github.com/designqa/designqa/internal/domain"
)

func newDemoCmd(opts *globalOptions) *cobra.Command {
	var (
		jsonOutput bool
		seed       int64
		count      int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Score a built-in sample design",
		Long: "Score the three-element showcase design, or with --count a generated\n" +
			"layout of that many elements. The same --seed always yields the same layout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must be >= 0 (got %d)", count)
			}
			a, err := newApp(opts, "warn")
			if err != nil {
				return err
			}
			defer a.close()

			var elements []domain.DesignElement
			if count == 0 {
				elements = sample.Elements()
			} else {
				elements = sample.NewGenerator(seed).Generate(count)
			}

			report, err := a.svc.Analyze(cmd.Context(), elements, a.svc.Checks())
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed for the generated layout")
	cmd.Flags().IntVar(&count, "count", 0, "Generate this many elements instead of the showcase design")
	return cmd
}
