package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configDir string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "designqa",
		Short:         "Catch design problems before they ship",
		Long:          "designqa scores a design selection for contrast, typography, spacing, alignment and accessibility problems.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "Directory holding .designqa.yaml (default $DESIGNQA_CONFIG_DIR or .)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd(opts))
	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newRulesCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
