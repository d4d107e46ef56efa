// Package preset provides the built-in rule groups and the default base
// configuration.
//
// Every call decodes the embedded documents again: callers are free to modify
// the returned values.
package preset

import (
	"embed"
	"fmt"
	"path"

	"github.com/grafana/lintrc/internal/lintconfig"
	"github.com/grafana/lintrc/internal/rules"
)

//go:embed defaults.yaml groups/*.yaml
var presetFS embed.FS

// GroupNames lists the built-in groups, in the order in which they are applied.
//
//nolint:gochecknoglobals
var GroupNames = []string{
	"possible-errors",
	"best-practices",
	"variables",
	"node",
	"stylistic",
	"es6",
}

// Groups returns the built-in rule groups, in order.
func Groups() ([]rules.Group, error) {
	groups := make([]rules.Group, 0, len(GroupNames))

	for _, name := range GroupNames {
		group, err := Group(name)
		if err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// Group returns the built-in group with the given name.
func Group(name string) (rules.Group, error) {
	file := path.Join("groups", name+".yaml")

	contents, err := presetFS.ReadFile(file)
	if err != nil {
		return rules.Group{}, fmt.Errorf("unknown built-in group '%s': %w", name, err)
	}

	group, err := rules.ParseGroup(name, contents)
	if err != nil {
		return rules.Group{}, fmt.Errorf("could not parse built-in group '%s': %w", name, err)
	}

	return group, nil
}

// Defaults returns the default base configuration.
func Defaults() (lintconfig.Configuration, error) {
	contents, err := presetFS.ReadFile("defaults.yaml")
	if err != nil {
		return nil, err
	}

	cfg, err := lintconfig.Parse(contents)
	if err != nil {
		return nil, fmt.Errorf("could not parse default configuration: %w", err)
	}

	return cfg, nil
}
