package linter

import (
	"slices"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

type Report struct {
	Violations []Violation `json:"violations"`
	Summary    Summary     `json:"summary"`
}

// ViolationsRuleCount returns the number of violations per rule identifier
// (for rules involved in violations).
func (report Report) ViolationsRuleCount() map[string]int {
	violationsMap := map[string]int{}
	for _, violation := range report.Violations {
		violationsMap[violation.Rule]++
	}

	return violationsMap
}

// HasViolationsAtLeast tells whether the report holds violations with the
// given severity or a more serious one.
func (report Report) HasViolationsAtLeast(severity string) bool {
	return slices.ContainsFunc(report.Violations, func(violation Violation) bool {
		return severityRank(violation.Severity) >= severityRank(severity)
	})
}

// Violation describes a problem found in a built configuration.
type Violation struct {
	// Check is the name of the check that reported the violation.
	Check       string `json:"check"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	// Rule is the identifier of the lint rule involved.
	Rule     string   `json:"rule"`
	Location Location `json:"location,omitempty"`
	Details  string   `json:"details,omitempty"`
}

// Location points to where a rule value comes from.
type Location struct {
	File  string `json:"file,omitempty"`
	Group string `json:"group,omitempty"`
	Path  string `json:"path,omitempty"`
}

func (l Location) String() string {
	source := l.File
	if source == "" && l.Group != "" {
		source = "group " + l.Group
	}

	if l.Path == "" {
		return source
	}

	if source == "" {
		return l.Path
	}

	return source + ":" + l.Path
}

type Summary struct {
	RulesChecked  int `json:"rules_checked"`
	GroupsChecked int `json:"groups_checked"`
	ChecksSkipped int `json:"checks_skipped"`
	NumViolations int `json:"num_violations"`
}

func severityRank(severity string) int {
	switch severity {
	case SeverityError:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}
