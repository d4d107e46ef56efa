//nolint:wrapcheck
package linter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Reporter formats and publishes linter reports.
type Reporter interface {
	// Publish formats and publishes a report to any appropriate target
	Publish(ctx context.Context, out io.Writer, report Report) error
}

var _ Reporter = (*CompactReporter)(nil)

// CompactReporter reports violations in a compact table.
type CompactReporter struct {
}

// Publish prints a compact report to the configured output.
func (reporter CompactReporter) Publish(_ context.Context, out io.Writer, r Report) error {
	if len(r.Violations) == 0 {
		_, err := fmt.Fprintln(out)

		return err
	}

	buffer := &strings.Builder{}
	table := tablewriter.NewWriter(buffer)
	table.Header("Location", "Severity", "Check", "Details")

	for _, violation := range r.Violations {
		if err := table.Append([]string{violation.Location.String(), violation.Severity, violation.Check, violation.Details}); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d %s checked, %d %s found.",
		r.Summary.RulesChecked, pluralize("rule", r.Summary.RulesChecked),
		r.Summary.NumViolations, pluralize("violation", r.Summary.NumViolations))

	_, err := fmt.Fprintln(out, buffer.String()+summary)

	return err
}

var _ Reporter = (*PrettyReporter)(nil)

// PrettyReporter is a Reporter for representing reports as aligned,
// human-readable blocks.
type PrettyReporter struct {
}

// Publish prints a pretty report to the configured output.
func (reporter PrettyReporter) Publish(_ context.Context, out io.Writer, r Report) error {
	numsWarning, numsError := 0, 0

	for _, violation := range r.Violations {
		switch violation.Severity {
		case SeverityWarning:
			numsWarning++
		case SeverityError:
			numsError++
		}
	}

	footer := fmt.Sprintf("%d %s checked in %d %s.",
		r.Summary.RulesChecked, pluralize("rule", r.Summary.RulesChecked),
		r.Summary.GroupsChecked, pluralize("group", r.Summary.GroupsChecked))

	if r.Summary.NumViolations == 0 {
		footer += " No violations found."
	} else {
		footer += fmt.Sprintf(" %d %s (%d %s, %d %s) found.",
			r.Summary.NumViolations, pluralize("violation", r.Summary.NumViolations),
			numsError, pluralize("error", numsError),
			numsWarning, pluralize("warning", numsWarning),
		)
	}

	if r.Summary.ChecksSkipped > 0 {
		footer += fmt.Sprintf(" %d %s skipped.", r.Summary.ChecksSkipped, pluralize("check", r.Summary.ChecksSkipped))
	}

	_, err := fmt.Fprint(out, buildPrettyViolations(r.Violations)+footer+"\n")
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func buildPrettyViolations(violations []Violation) string {
	buffer := &strings.Builder{}

	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	line := func(label string, value string) {
		fmt.Fprintf(buffer, "%s\t%s\n", yellow(fmt.Sprintf("%-12s", label)), value)
	}

	for i, violation := range violations {
		description := red(violation.Description)
		if violation.Severity == SeverityWarning {
			description = yellow(violation.Description)
		}

		line("Check:", violation.Check)

		// if there is no support for color, then we show the level in addition
		// so that the level of the violation is still clear
		if color.NoColor {
			line("Severity:", violation.Severity)
		}

		line("Description:", description)
		line("Rule:", violation.Rule)
		line("Location:", cyan(violation.Location.String()))
		line("Details:", violation.Details)

		if i+1 < len(violations) {
			buffer.WriteString("\n")
		}
	}

	if len(violations) > 0 {
		buffer.WriteString("\n")
	}

	return buffer.String()
}

func pluralize(singular string, count int) string {
	if count == 1 {
		return singular
	}

	return singular + "s"
}
