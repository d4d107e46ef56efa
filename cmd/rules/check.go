package rules

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/grafana/lintrc/cmd/config"
	cmdio "github.com/grafana/lintrc/cmd/io"
	"github.com/grafana/lintrc/internal/fail"
	"github.com/grafana/lintrc/internal/format"
	"github.com/grafana/lintrc/internal/linter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const failOnNone = "none"

// exitCodeViolations is the exit code used when violations at or above the
// --fail-on severity are found.
const exitCodeViolations = 2

type checkOpts struct {
	Build buildOpts
	IO    cmdio.Options

	Checks []string
	FailOn string
}

func (opts *checkOpts) BindFlags(flags *pflag.FlagSet) {
	opts.Build.BindFlags(flags)
	opts.IO.BindFlags(flags)

	flags.StringSliceVar(&opts.Checks, "check", nil, "Only run the given checks. Can be repeated")
	flags.StringVar(&opts.FailOn, "fail-on", linter.SeverityError, "Severity of the violations that make the command fail. One of: error, warning, none")
}

func (opts *checkOpts) Validate() error {
	if err := opts.Build.Validate(); err != nil {
		return err
	}

	if err := opts.IO.Validate(); err != nil {
		return err
	}

	allowed := []string{linter.SeverityError, linter.SeverityWarning, failOnNone}
	if !slices.Contains(allowed, opts.FailOn) {
		return fmt.Errorf("unknown value '%s' for --fail-on. Valid values are: %s", opts.FailOn, strings.Join(allowed, ", "))
	}

	return nil
}

func checkCmd(configOpts *config.Options) *cobra.Command {
	opts := &checkOpts{}

	cmd := &cobra.Command{
		Use:   "check",
		Args:  cobra.NoArgs,
		Short: "Check the built configuration for issues",
		Long: `Check the built configuration for issues.

Available checks:
  invalid-rule-value   (error)    a rule value is not a severity or a list starting with one
  shadowed-rule        (warning)  a rule declared by a group is overwritten by a later group
  redundant-override   (warning)  a group sets a rule to the value the base already has`,
		Example: "\n\t" + binaryName + " rules check\n\t" +
			binaryName + " rules check --fail-on warning\n\t" +
			binaryName + " rules check --check shadowed-rule -o compact",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()

			l, err := linter.New(linter.Only(opts.Checks))
			if err != nil {
				return err
			}

			b, _, err := opts.Build.builder(ctx, configOpts)
			if err != nil {
				return err
			}

			result, err := b.Build(ctx)
			if err != nil {
				return err
			}

			report, err := l.Lint(ctx, result)
			if err != nil {
				return err
			}

			if err := opts.IO.Format(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			if opts.FailOn == failOnNone || !report.HasViolationsAtLeast(opts.FailOn) {
				return nil
			}

			return fail.DetailedError{
				Summary: "Configuration check failed",
				Details: fmt.Sprintf("%d %s found", report.Summary.NumViolations, pluralize("violation", report.Summary.NumViolations)),
				Suggestions: []string{
					"Review the rule groups listed in the report",
					fmt.Sprintf("Inspect the applied groups: %s rules groups", binaryName),
				},
			}.WithExitCode(exitCodeViolations)
		},
	}

	opts.IO.RegisterCustomFormat("pretty", reporterFormatter(cmd, linter.PrettyReporter{}))
	opts.IO.RegisterCustomFormat("compact", reporterFormatter(cmd, linter.CompactReporter{}))
	opts.IO.DefaultFormat("pretty")

	opts.BindFlags(cmd.Flags())

	return cmd
}

func reporterFormatter(cmd *cobra.Command, reporter linter.Reporter) format.Formatter {
	return func(out io.Writer, input any) error {
		report, ok := input.(linter.Report)
		if !ok {
			return fmt.Errorf("expected a report, got %T", input)
		}

		return reporter.Publish(cmd.Context(), out, report)
	}
}
