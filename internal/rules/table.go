package rules

import (
	"maps"
	"slices"

	"github.com/grafana/lintrc/internal/merge"
)

// Table maps rule identifiers to rule values.
//
// A rule value is either a severity or a list made of a severity followed by
// the rule's options.
type Table map[string]any

// Combine copies the entries of every table into a new one, in order.
// Entries of later tables overwrite entries of earlier ones with the same
// identifier. Values are not merged.
func Combine(tables ...Table) Table {
	mappings := make([]map[string]any, 0, len(tables))
	for _, table := range tables {
		mappings = append(mappings, table)
	}

	return merge.Shallow(mappings...)
}

// IDs returns the sorted list of rule identifiers in the table.
func (table Table) IDs() []string {
	return slices.Sorted(maps.Keys(table))
}

// CountBySeverity counts the rules of the table by severity. Rules with an
// invalid value are counted under the -1 key.
func (table Table) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)

	for _, value := range table {
		severity, err := SeverityOf(value)
		if err != nil {
			counts[-1]++
			continue
		}

		counts[severity]++
	}

	return counts
}
