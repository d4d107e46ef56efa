package rules

import (
	"fmt"
	"io"
	"strconv"

	"github.com/grafana/lintrc/cmd/config"
	cmdio "github.com/grafana/lintrc/cmd/io"
	"github.com/grafana/lintrc/internal/rules"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// groupSummary describes a rule group as listed by the groups command.
type groupSummary struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string `json:"source" yaml:"source"`
	Rules       int    `json:"rules" yaml:"rules"`
	Off         int    `json:"off" yaml:"off"`
	Warn        int    `json:"warn" yaml:"warn"`
	Error       int    `json:"error" yaml:"error"`
	Invalid     int    `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

func summarizeGroups(groups []rules.Group) []groupSummary {
	summaries := make([]groupSummary, 0, len(groups))

	for _, group := range groups {
		counts := group.Rules.CountBySeverity()
		source := group.Source
		if source == "" {
			source = "built-in"
		}

		summaries = append(summaries, groupSummary{
			Name:        group.Name,
			Description: group.Description,
			Source:      source,
			Rules:       len(group.Rules),
			Off:         counts[rules.Off],
			Warn:        counts[rules.Warn],
			Error:       counts[rules.Error],
			Invalid:     counts[-1],
		})
	}

	return summaries
}

type groupsOpts struct {
	Build buildOpts
	IO    cmdio.Options
}

func (opts *groupsOpts) BindFlags(flags *pflag.FlagSet) {
	opts.Build.BindFlags(flags)
	opts.IO.BindFlags(flags)
}

func (opts *groupsOpts) Validate() error {
	if err := opts.Build.Validate(); err != nil {
		return err
	}

	return opts.IO.Validate()
}

func groupsCmd(configOpts *config.Options) *cobra.Command {
	opts := &groupsOpts{}

	cmd := &cobra.Command{
		Use:   "groups",
		Args:  cobra.NoArgs,
		Short: "List the rule groups to apply",
		Long:  "List the rule groups to apply, in the order in which they are applied.",
		Example: "\n\t" + binaryName + " rules groups\n\t" +
			binaryName + " rules groups --no-preset -o yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			b, _, err := opts.Build.builder(cmd.Context(), configOpts)
			if err != nil {
				return err
			}

			groups, err := b.Groups(cmd.Context())
			if err != nil {
				return err
			}

			return opts.IO.Format(cmd.OutOrStdout(), summarizeGroups(groups))
		},
	}

	opts.IO.RegisterCustomFormat("table", groupsTable)
	opts.IO.DefaultFormat("table")

	opts.BindFlags(cmd.Flags())

	return cmd
}

func groupsTable(out io.Writer, input any) error {
	summaries, ok := input.([]groupSummary)
	if !ok {
		return fmt.Errorf("expected a list of groups, got %T", input)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Name", "Source", "Rules", "Off", "Warn", "Error")

	for _, summary := range summaries {
		row := []string{
			summary.Name,
			summary.Source,
			strconv.Itoa(summary.Rules),
			strconv.Itoa(summary.Off),
			strconv.Itoa(summary.Warn),
			strconv.Itoa(summary.Error),
		}

		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}
