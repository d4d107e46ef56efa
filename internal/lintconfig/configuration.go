// Package lintconfig holds the configuration documents handed to the linting
// engine, and the logic combining a base configuration with rule tables.
package lintconfig

import (
	"github.com/grafana/lintrc/internal/format"
	"github.com/grafana/lintrc/internal/merge"
	"github.com/grafana/lintrc/internal/rules"
)

// RulesField is the name of the field holding the rules of a configuration.
const RulesField = "rules"

// Configuration is a lint configuration document.
// Only its "rules" field is interpreted: every other field (environments,
// parser options, plugins, ...) is opaque and kept as-is.
type Configuration map[string]any

// Rules returns the rules declared by the configuration.
// A configuration without rules yields an empty table.
func (cfg Configuration) Rules() (rules.Table, error) {
	mapping, err := format.MappingField(cfg, RulesField)
	if err != nil {
		return nil, err
	}

	if mapping == nil {
		return rules.Table{}, nil
	}

	return rules.Table(mapping), nil
}

// Clone returns a deep copy of the configuration.
func (cfg Configuration) Clone() Configuration {
	return Configuration(merge.CloneMap(cfg))
}

// Build combines a base configuration with an ordered sequence of rule tables.
//
// The tables are first combined into one: entries of later tables overwrite
// the entries of earlier ones. The combined table is then deep-merged onto the
// rules of the base configuration: values that are mappings on both sides are
// merged recursively, any other value from the tables replaces the base one.
//
// The result is a new configuration with the same fields as the base, its
// rules replaced by the merged table. Neither the base nor the tables are
// modified. Rule identifiers and values are not validated.
func Build(base Configuration, tables ...rules.Table) (Configuration, error) {
	baseRules, err := base.Rules()
	if err != nil {
		return nil, err
	}

	combined := rules.Combine(tables...)

	built := base.Clone()
	if built == nil {
		built = Configuration{}
	}

	built[RulesField] = merge.Deep(baseRules, combined)

	return built, nil
}
