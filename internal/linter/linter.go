package linter

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/grafana/grafana-app-sdk/logging"
	"github.com/grafana/lintrc/internal/builder"
)

type Option func(l *Linter) error

// Only restricts the linter to the given checks.
func Only(names []string) Option {
	return func(l *Linter) error {
		if len(names) == 0 {
			return nil
		}

		for _, name := range names {
			if !slices.ContainsFunc(l.checks, func(check Check) bool { return check.Name == name }) {
				return fmt.Errorf("unknown check '%s'. Valid checks are: %s", name, strings.Join(l.checkNames(), ", "))
			}
		}

		l.enabled = names
		return nil
	}
}

// Linter runs checks against built configurations.
type Linter struct {
	checks  []Check
	enabled []string
}

func New(opts ...Option) (*Linter, error) {
	checks, err := builtinChecks()
	if err != nil {
		return nil, err
	}

	linter := &Linter{
		checks: checks,
	}

	for _, opt := range opts {
		if err := opt(linter); err != nil {
			return nil, err
		}
	}

	return linter, nil
}

// Checks returns the checks known to the linter.
func (linter *Linter) Checks() []Check {
	return slices.Clone(linter.checks)
}

// Lint runs the enabled checks against a build result.
func (linter *Linter) Lint(ctx context.Context, result builder.Result) (Report, error) {
	logger := logging.FromContext(ctx).With(slog.String("component", "linter"))
	finalReport := Report{}
	skipped := 0

	for _, check := range linter.checks {
		if !linter.isEnabled(check.Name) {
			skipped++
			continue
		}

		logger.Debug("Running check", slog.String("check", check.Name))

		violations, err := check.run(ctx, result)
		if err != nil {
			return Report{}, fmt.Errorf("check %s failed: %w", check.Name, err)
		}

		finalReport.Violations = append(finalReport.Violations, violations...)
	}

	builtRules, err := result.Configuration.Rules()
	if err != nil {
		return Report{}, err
	}

	finalReport.Summary = Summary{
		RulesChecked:  len(builtRules),
		GroupsChecked: len(result.Groups),
		ChecksSkipped: skipped,
		NumViolations: len(finalReport.Violations),
	}

	return finalReport, nil
}

func (linter *Linter) isEnabled(name string) bool {
	return len(linter.enabled) == 0 || slices.Contains(linter.enabled, name)
}

func (linter *Linter) checkNames() []string {
	names := make([]string, 0, len(linter.checks))
	for _, check := range linter.checks {
		names = append(names, check.Name)
	}

	return names
}
