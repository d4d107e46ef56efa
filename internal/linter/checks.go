package linter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/grafana/lintrc/internal/builder"
	"github.com/grafana/lintrc/internal/rules"
	"github.com/xeipuuv/gojsonschema"
)

const (
	CheckInvalidRuleValue  = "invalid-rule-value"
	CheckShadowedRule      = "shadowed-rule"
	CheckRedundantOverride = "redundant-override"
)

// ruleValueSchema describes the values accepted for a rule: a severity, or a
// list starting with a severity and followed by the rule's options.
const ruleValueSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "definitions": {
    "severity": {
      "enum": [0, 1, 2, "off", "warn", "error"]
    }
  },
  "oneOf": [
    {"$ref": "#/definitions/severity"},
    {
      "type": "array",
      "minItems": 1,
      "items": [{"$ref": "#/definitions/severity"}]
    }
  ]
}`

// Check inspects a build result and reports violations.
type Check struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`

	run func(ctx context.Context, result builder.Result) ([]Violation, error)
}

func builtinChecks() ([]Check, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(ruleValueSchema))
	if err != nil {
		return nil, fmt.Errorf("could not compile rule value schema: %w", err)
	}

	return []Check{
		{
			Name:        CheckInvalidRuleValue,
			Description: "Rule values must be a severity (0, 1, 2, off, warn, error) or a list starting with one",
			Severity:    SeverityError,
			run:         invalidRuleValues(schema),
		},
		{
			Name:        CheckShadowedRule,
			Description: "Rule declared by a group and silently overwritten by a later one",
			Severity:    SeverityWarning,
			run:         shadowedRules,
		},
		{
			Name:        CheckRedundantOverride,
			Description: "Rule set by a group to the value the base configuration already has",
			Severity:    SeverityWarning,
			run:         redundantOverrides,
		},
	}, nil
}

func invalidRuleValues(schema *gojsonschema.Schema) func(context.Context, builder.Result) ([]Violation, error) {
	return func(_ context.Context, result builder.Result) ([]Violation, error) {
		builtRules, err := result.Configuration.Rules()
		if err != nil {
			return nil, err
		}

		origins := ruleOrigins(result)

		var violations []Violation
		for _, id := range builtRules.IDs() {
			validation, err := schema.Validate(gojsonschema.NewGoLoader(builtRules[id]))
			if err != nil {
				return nil, fmt.Errorf("could not validate rule '%s': %w", id, err)
			}

			if validation.Valid() {
				continue
			}

			details := make([]string, 0, len(validation.Errors()))
			for _, validationErr := range validation.Errors() {
				details = append(details, validationErr.Description())
			}

			violations = append(violations, Violation{
				Check:       CheckInvalidRuleValue,
				Description: "Invalid rule value",
				Severity:    SeverityError,
				Rule:        id,
				Location:    origins[id],
				Details:     fmt.Sprintf("%v: %s", builtRules[id], strings.Join(details, "; ")),
			})
		}

		return violations, nil
	}
}

func shadowedRules(_ context.Context, result builder.Result) ([]Violation, error) {
	collisions := rules.Collisions(result.Groups)
	violations := make([]Violation, 0, len(collisions))

	for _, collision := range collisions {
		violations = append(violations, Violation{
			Check:       CheckShadowedRule,
			Description: "Rule overwritten by a later group",
			Severity:    SeverityWarning,
			Rule:        collision.Rule,
			Location: Location{
				File:  collision.Source,
				Group: collision.OverriddenBy,
				Path:  rulePath(collision.Rule),
			},
			Details: fmt.Sprintf("value from group '%s' is overwritten by group '%s'", collision.Group, collision.OverriddenBy),
		})
	}

	return violations, nil
}

func redundantOverrides(_ context.Context, result builder.Result) ([]Violation, error) {
	baseRules, err := result.Base.Rules()
	if err != nil {
		return nil, err
	}

	origins := ruleOrigins(result)

	var violations []Violation
	for _, id := range result.Combined.IDs() {
		baseValue, found := baseRules[id]
		if !found || !cmp.Equal(baseValue, result.Combined[id]) {
			continue
		}

		violations = append(violations, Violation{
			Check:       CheckRedundantOverride,
			Description: "Rule already set to this value by the base configuration",
			Severity:    SeverityWarning,
			Rule:        id,
			Location:    origins[id],
			Details:     fmt.Sprintf("the base configuration already sets it to %v", baseValue),
		})
	}

	return violations, nil
}

// ruleOrigins maps every rule of the built configuration to the place its
// value comes from: the last group declaring it, or the base configuration.
func ruleOrigins(result builder.Result) map[string]Location {
	origins := make(map[string]Location)

	if baseRules, err := result.Base.Rules(); err == nil {
		for id := range baseRules {
			origins[id] = Location{File: result.BasePath, Path: rulePath(id)}
		}
	}

	for _, group := range result.Groups {
		for id := range group.Rules {
			origins[id] = Location{File: group.Source, Group: group.Name, Path: rulePath(id)}
		}
	}

	return origins
}

func rulePath(id string) string {
	return fmt.Sprintf("$.rules['%s']", id)
}
