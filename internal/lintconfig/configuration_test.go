package lintconfig_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grafana/lintrc/internal/format"
	"github.com/grafana/lintrc/internal/lintconfig"
	"github.com/grafana/lintrc/internal/rules"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	req := require.New(t)

	base := lintconfig.Configuration{
		"rules": map[string]any{
			"no-console": 2,
			"semi":       []any{2, "never"},
		},
	}

	built, err := lintconfig.Build(base, rules.Table{
		"no-console": 0,
		"quotes":     []any{2, "double"},
	})
	req.NoError(err)

	req.Equal(lintconfig.Configuration{
		"rules": map[string]any{
			"no-console": 0,
			"semi":       []any{2, "never"},
			"quotes":     []any{2, "double"},
		},
	}, built)
}

func TestBuild_laterTablesWin(t *testing.T) {
	req := require.New(t)

	built, err := lintconfig.Build(lintconfig.Configuration{}, rules.Table{"eqeqeq": 1}, rules.Table{"eqeqeq": 2})
	req.NoError(err)

	builtRules, err := built.Rules()
	req.NoError(err)
	req.Equal(2, builtRules["eqeqeq"])
}

func TestBuild_tablesAreCombinedShallowly(t *testing.T) {
	req := require.New(t)

	built, err := lintconfig.Build(
		lintconfig.Configuration{},
		rules.Table{"settings": map[string]any{"a": 1, "b": 1}},
		rules.Table{"settings": map[string]any{"b": 2}},
	)
	req.NoError(err)

	req.Equal(map[string]any{"settings": map[string]any{"b": 2}}, built["rules"])
}

func TestBuild_mappingsAreMergedWithBase(t *testing.T) {
	req := require.New(t)

	base := lintconfig.Configuration{
		"rules": map[string]any{
			"custom/naming": map[string]any{"severity": 1, "options": map[string]any{"prefix": "x", "suffix": "y"}},
		},
	}

	built, err := lintconfig.Build(base, rules.Table{
		"custom/naming": map[string]any{"severity": 2, "options": map[string]any{"suffix": "z"}},
	})
	req.NoError(err)

	req.Equal(map[string]any{
		"custom/naming": map[string]any{
			"severity": 2,
			"options":  map[string]any{"prefix": "x", "suffix": "z"},
		},
	}, built["rules"])
}

func TestBuild_keepsOtherFields(t *testing.T) {
	req := require.New(t)

	base := lintconfig.Configuration{
		"root": true,
		"env":  map[string]any{"node": true},
		"parserOptions": map[string]any{
			"ecmaVersion": 2018,
		},
	}

	built, err := lintconfig.Build(base, rules.Table{"semi": 2})
	req.NoError(err)

	req.Equal(lintconfig.Configuration{
		"root":          true,
		"env":           map[string]any{"node": true},
		"parserOptions": map[string]any{"ecmaVersion": 2018},
		"rules":         map[string]any{"semi": 2},
	}, built)
}

func TestBuild_doesNotMutateBase(t *testing.T) {
	req := require.New(t)

	base := lintconfig.Configuration{
		"env": map[string]any{"node": true},
		"rules": map[string]any{
			"no-console": 2,
			"max-len":    map[string]any{"code": 80},
		},
	}
	snapshot := base.Clone()
	table := rules.Table{"no-console": 0, "max-len": map[string]any{"tabWidth": 2}}

	built, err := lintconfig.Build(base, table)
	req.NoError(err)

	req.Equal(snapshot, base)
	req.Equal(rules.Table{"no-console": 0, "max-len": map[string]any{"tabWidth": 2}}, table)

	// the result doesn't share anything with its inputs
	built["env"].(map[string]any)["node"] = false
	built["rules"].(map[string]any)["max-len"].(map[string]any)["code"] = 1
	req.Equal(snapshot, base)
}

func TestBuild_isDeterministic(t *testing.T) {
	req := require.New(t)

	base := lintconfig.Configuration{
		"rules": map[string]any{"semi": []any{2, "never"}, "indent": []any{2, 4}},
	}
	tables := []rules.Table{
		{"indent": []any{2, 2, map[string]any{"SwitchCase": 1}}},
		{"semi": 2, "quotes": []any{2, "double"}},
	}

	first, err := lintconfig.Build(base, tables...)
	req.NoError(err)

	second, err := lintconfig.Build(base, tables...)
	req.NoError(err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("builds differ (-first +second):\n%s", diff)
	}
}

func TestBuild_nilBase(t *testing.T) {
	req := require.New(t)

	built, err := lintconfig.Build(nil, rules.Table{"semi": 2})
	req.NoError(err)
	req.Equal(lintconfig.Configuration{"rules": map[string]any{"semi": 2}}, built)
}

func TestBuild_noTables(t *testing.T) {
	req := require.New(t)

	built, err := lintconfig.Build(lintconfig.Configuration{"root": true})
	req.NoError(err)
	req.Equal(lintconfig.Configuration{"root": true, "rules": map[string]any{}}, built)
}

func TestBuild_malformedRules(t *testing.T) {
	req := require.New(t)

	_, err := lintconfig.Build(lintconfig.Configuration{"rules": []any{"semi"}}, rules.Table{"semi": 2})
	req.ErrorIs(err, format.ErrMalformedDocument)
}
