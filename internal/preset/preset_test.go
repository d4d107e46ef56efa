package preset_test

import (
	"testing"

	"github.com/grafana/lintrc/internal/lintconfig"
	"github.com/grafana/lintrc/internal/preset"
	"github.com/grafana/lintrc/internal/rules"
	"github.com/stretchr/testify/require"
)

func TestGroups(t *testing.T) {
	req := require.New(t)

	groups, err := preset.Groups()
	req.NoError(err)
	req.Len(groups, len(preset.GroupNames))

	for i, group := range groups {
		req.Equal(preset.GroupNames[i], group.Name)
		req.NotEmpty(group.Description)
		req.NotEmpty(group.Docs)
		req.NotEmpty(group.Rules)

		for id, value := range group.Rules {
			_, err := rules.SeverityOf(value)
			req.NoError(err, "rule %s of group %s", id, group.Name)
		}
	}
}

func TestGroups_noCollisions(t *testing.T) {
	req := require.New(t)

	groups, err := preset.Groups()
	req.NoError(err)

	req.Empty(rules.Collisions(groups))
}

func TestGroup(t *testing.T) {
	req := require.New(t)

	group, err := preset.Group("variables")
	req.NoError(err)

	req.Equal(rules.Table{
		"no-delete-var":  1,
		"no-unused-vars": []any{2, map[string]any{"args": "none"}},
	}, group.Rules)

	stylistic, err := preset.Group("stylistic")
	req.NoError(err)
	req.Equal([]any{2, "1tbs", map[string]any{"allowSingleLine": true}}, stylistic.Rules["brace-style"])
	req.Equal([]any{2, 2, map[string]any{"SwitchCase": 1}}, stylistic.Rules["indent"])
	req.Equal([]any{2, "always", map[string]any{"exceptions": []any{"-"}}}, stylistic.Rules["spaced-comment"])

	_, err = preset.Group("unknown")
	req.ErrorContains(err, "unknown built-in group 'unknown'")
}

func TestGroups_freshValues(t *testing.T) {
	req := require.New(t)

	first, err := preset.Groups()
	req.NoError(err)

	first[0].Rules["no-console"] = 2

	second, err := preset.Groups()
	req.NoError(err)
	req.Equal(0, second[0].Rules["no-console"])
}

func TestDefaults(t *testing.T) {
	req := require.New(t)

	defaults, err := preset.Defaults()
	req.NoError(err)

	req.Equal(true, defaults["root"])
	req.Equal(map[string]any{"browser": true, "node": true, "es6": true}, defaults["env"])

	defaultRules, err := defaults.Rules()
	req.NoError(err)
	req.Empty(defaultRules)
}

func TestBuild_withPreset(t *testing.T) {
	req := require.New(t)

	defaults, err := preset.Defaults()
	req.NoError(err)

	groups, err := preset.Groups()
	req.NoError(err)

	built, err := lintconfig.Build(defaults, rules.Tables(groups)...)
	req.NoError(err)

	builtRules, err := built.Rules()
	req.NoError(err)

	total := 0
	for _, group := range groups {
		total += len(group.Rules)
	}

	req.Len(builtRules, total)
	req.Equal(2, builtRules["eqeqeq"])
	req.Equal([]any{2, "after"}, builtRules["yield-star-spacing"])
	req.Equal(defaults["parserOptions"], built["parserOptions"])
}
