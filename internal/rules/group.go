package rules

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/grafana/grafana-app-sdk/logging"
	"github.com/grafana/lintrc/internal/format"
)

// Group is a named table of rules, declared together for organizational
// purposes.
type Group struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Docs        string `json:"docs,omitempty" yaml:"docs,omitempty"`
	// Source is the file from which the group was loaded, if any.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Rules  Table  `json:"rules" yaml:"rules"`
}

// Tables returns the rule tables of the given groups, in order.
func Tables(groups []Group) []Table {
	tables := make([]Table, 0, len(groups))
	for _, group := range groups {
		tables = append(tables, group.Rules)
	}

	return tables
}

// Collision describes a rule declared by a group and overwritten by a later one.
type Collision struct {
	Rule string `json:"rule" yaml:"rule"`
	// Group is the name of the group whose value got overwritten.
	Group string `json:"group" yaml:"group"`
	// OverriddenBy is the name of the group whose value won.
	OverriddenBy string `json:"overridden_by" yaml:"overridden_by"`
	// Source is the file of the group whose value won, if any.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Collisions lists the rules declared by more than one group, in the order in
// which the overwrites happen when combining the groups.
func Collisions(groups []Group) []Collision {
	var collisions []Collision

	declaredBy := make(map[string]string)

	for _, group := range groups {
		for _, id := range group.Rules.IDs() {
			if previous, found := declaredBy[id]; found {
				collisions = append(collisions, Collision{
					Rule:         id,
					Group:        previous,
					OverriddenBy: group.Name,
					Source:       group.Source,
				})
			}

			declaredBy[id] = group.Name
		}
	}

	return collisions
}

// ParseGroup decodes a rule group document.
// The given name is used when the document doesn't declare one.
func ParseGroup(name string, contents []byte) (Group, error) {
	document, err := format.ParseDocument(contents)
	if err != nil {
		return Group{}, err
	}

	group := Group{Name: name}

	for field, dest := range map[string]*string{
		"name":        &group.Name,
		"description": &group.Description,
		"docs":        &group.Docs,
	} {
		value, found := document[field]
		if !found || value == nil {
			continue
		}

		str, ok := value.(string)
		if !ok {
			return Group{}, format.FieldError{
				Path:    "$." + field,
				Message: fmt.Sprintf("'%s' must be a string, got %s", field, format.TypeName(value)),
			}
		}

		*dest = str
	}

	rulesMapping, err := format.MappingField(document, "rules")
	if err != nil {
		return Group{}, err
	}

	group.Rules = Table(rulesMapping)
	if group.Rules == nil {
		group.Rules = Table{}
	}

	return group, nil
}

// LoadGroup reads and decodes a rule group file.
func LoadGroup(ctx context.Context, filename string) (Group, error) {
	logging.FromContext(ctx).Debug("Loading rule group", slog.String("filename", filename))

	contents, err := os.ReadFile(filename)
	if err != nil {
		return Group{}, err
	}

	group, err := ParseGroup(nameFromFile(filename), contents)
	if err != nil {
		return Group{}, format.AnnotateSource(filename, contents, err)
	}

	group.Source = filename

	return group, nil
}

func nameFromFile(filename string) string {
	base := filepath.Base(filename)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
