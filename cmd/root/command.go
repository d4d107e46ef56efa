package root

import (
	"os"
	"path"

	"github.com/fatih/color"
	"github.com/grafana/grafana-app-sdk/logging"
	"github.com/grafana/lintrc/cmd/config"
	"github.com/grafana/lintrc/cmd/rules"
	"github.com/grafana/lintrc/internal/logs"
	"github.com/spf13/cobra"
)

func Command(version string) *cobra.Command {
	noColors := false
	verbosity := 0

	rootCmd := &cobra.Command{
		Use:           path.Base(os.Args[0]),
		Short:         "Build lint configurations from a base configuration and rule groups",
		SilenceUsage:  true,
		SilenceErrors: true, // We want to print errors ourselves
		Version:       version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if noColors {
				color.NoColor = true // globally disables colorized output
			}

			handler := logs.NewHandler(cmd.ErrOrStderr(), &logs.Options{
				Level: logs.VerbosityToLevel(verbosity),
			})

			cmd.SetContext(logging.Context(cmd.Context(), logging.NewSLogLogger(handler)))
		},
		Annotations: map[string]string{
			cobra.CommandDisplayNameAnnotation: "lintrc",
		},
	}

	rootCmd.AddCommand(config.Command())
	rootCmd.AddCommand(rules.Command())

	rootCmd.PersistentFlags().BoolVar(&noColors, "no-color", noColors, "Disable color output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Verbose mode. Multiple -v options increase the verbosity (maximum: 2)")

	return rootCmd
}
