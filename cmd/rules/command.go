package rules

import (
	"os"
	"path"

	"github.com/grafana/lintrc/cmd/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var binaryName = path.Base(os.Args[0])

func Command() *cobra.Command {
	configOpts := &config.Options{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Build and inspect lint configurations",
		Long: `Build and inspect lint configurations.

A configuration is built from a base configuration and an ordered list of rule groups:
the built-in groups first (unless disabled), then the groups listed in the current
context, then the ones given with --group.
When several groups declare the same rule, the last one wins.`,
	}

	configOpts.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(buildCmd(configOpts))
	cmd.AddCommand(checkCmd(configOpts))
	cmd.AddCommand(diffCmd(configOpts))
	cmd.AddCommand(groupsCmd(configOpts))

	return cmd
}
