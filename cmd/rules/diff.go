package rules

import (
	"bytes"

	"github.com/grafana/lintrc/cmd/config"
	cmdio "github.com/grafana/lintrc/cmd/io"
	"github.com/grafana/lintrc/internal/diff"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type diffOpts struct {
	Build buildOpts
	IO    cmdio.Options

	Full bool
}

func (opts *diffOpts) BindFlags(flags *pflag.FlagSet) {
	opts.Build.BindFlags(flags)
	opts.IO.BindFlags(flags)

	flags.BoolVar(&opts.Full, "full", false, "Print unchanged lines too")
}

func (opts *diffOpts) Validate() error {
	if err := opts.Build.Validate(); err != nil {
		return err
	}

	return opts.IO.Validate()
}

func diffCmd(configOpts *config.Options) *cobra.Command {
	opts := &diffOpts{}

	cmd := &cobra.Command{
		Use:   "diff",
		Args:  cobra.NoArgs,
		Short: "Show what the rule groups change in the base configuration",
		Long:  "Show the differences between the base configuration and the built one.",
		Example: "\n\t" + binaryName + " rules diff\n\t" +
			binaryName + " rules diff -o json --full",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			b, _, err := opts.Build.builder(cmd.Context(), configOpts)
			if err != nil {
				return err
			}

			result, err := b.Build(cmd.Context())
			if err != nil {
				return err
			}

			before := &bytes.Buffer{}
			if err := opts.IO.Format(before, result.Base); err != nil {
				return err
			}

			after := &bytes.Buffer{}
			if err := opts.IO.Format(after, result.Configuration); err != nil {
				return err
			}

			lines := diff.Lines(before.String(), after.String())
			if !diff.HasChanges(lines) {
				cmdio.Info(cmd.OutOrStdout(), "No differences")
				return nil
			}

			return diff.Print(cmd.OutOrStdout(), lines, opts.Full)
		},
	}

	opts.BindFlags(cmd.Flags())

	return cmd
}
