package config_test

import (
	"testing"

	"github.com/grafana/lintrc/internal/config"
	"github.com/stretchr/testify/require"
)

func TestConfig_HasContext(t *testing.T) {
	req := require.New(t)

	cfg := config.Config{
		Contexts: map[string]*config.Context{
			"web": {Base: "base.json"},
		},
		CurrentContext: "web",
	}

	req.True(cfg.HasContext("web"))
	req.False(cfg.HasContext("node"))
}

func TestConfig_GetCurrentContext(t *testing.T) {
	req := require.New(t)

	cfg := config.Config{
		Contexts: map[string]*config.Context{
			"web": {Name: "web", Base: "base.json"},
		},
		CurrentContext: "web",
	}

	ctx, err := cfg.GetCurrentContext()
	req.NoError(err)
	req.Equal("base.json", ctx.Base)

	cfg.CurrentContext = "node"
	_, err = cfg.GetCurrentContext()
	req.ErrorIs(err, config.ErrContextNotFound)
}

func TestConfig_GetCurrentContext_emptyConfig(t *testing.T) {
	req := require.New(t)

	cfg := config.Config{}

	ctx, err := cfg.GetCurrentContext()
	req.NoError(err)
	req.Equal(config.DefaultContextName, ctx.Name)
	req.True(ctx.IsEmpty())
}

func TestConfig_SetContext(t *testing.T) {
	req := require.New(t)

	cfg := config.Config{}
	cfg.SetContext("web", true, config.Context{Base: "base.json"})

	req.Equal("web", cfg.CurrentContext)
	req.Equal("web", cfg.Contexts["web"].Name)

	cfg.SetContext("node", false, config.Context{})
	req.Equal("web", cfg.CurrentContext)
	req.True(cfg.HasContext("node"))
}

func TestConfig_ResolvePath(t *testing.T) {
	req := require.New(t)

	cfg := config.Config{Source: "/home/user/.config/lintrc/config.yaml"}

	req.Equal("/home/user/.config/lintrc/rules/team.yaml", cfg.ResolvePath("./rules/team.yaml"))
	req.Equal("/etc/lintrc/company.yaml", cfg.ResolvePath("/etc/lintrc/company.yaml"))
	req.Empty(cfg.ResolvePath(""))

	noSource := config.Config{}
	req.Equal("rules/team.yaml", noSource.ResolvePath("rules/team.yaml"))
}

func TestContext_IsEmpty(t *testing.T) {
	req := require.New(t)

	req.True(config.Context{}.IsEmpty())
	req.True(config.Context{Name: "web"}.IsEmpty())
	req.False(config.Context{NoPreset: true}.IsEmpty())
	req.False(config.Context{Groups: []string{"a.yaml"}}.IsEmpty())
	req.False(config.Context{Output: "out.json"}.IsEmpty())
}

func TestContext_Validate(t *testing.T) {
	req := require.New(t)

	req.NoError(config.Context{Name: "web", Output: ".eslintrc.json", Groups: []string{"a.yaml"}}.Validate())
	req.NoError(config.Context{Output: "out.YML"}.Validate())

	err := config.Context{Name: "web", Output: ".eslintrc"}.Validate()
	validationErr := config.ValidationError{}
	req.ErrorAs(err, &validationErr)
	req.Equal("$.contexts.'web'.output", validationErr.Path)

	err = config.Context{Name: "web", Groups: []string{"a.yaml", " "}}.Validate()
	req.ErrorAs(err, &validationErr)
	req.Equal("$.contexts.'web'.groups[1]", validationErr.Path)
}

func TestMinify(t *testing.T) {
	req := require.New(t)

	cfg := config.Config{
		Contexts: map[string]*config.Context{
			"web":  {Base: "web.json"},
			"node": {Base: "node.json"},
		},
		CurrentContext: "web",
	}

	minified, err := config.Minify(cfg)
	req.NoError(err)

	req.Equal(config.Config{
		Contexts: map[string]*config.Context{
			"web": {Base: "web.json"},
		},
		CurrentContext: "web",
	}, minified)
}

func TestMinify_withNoCurrentContext(t *testing.T) {
	req := require.New(t)

	_, err := config.Minify(config.Config{
		Contexts: map[string]*config.Context{"web": {}},
	})
	req.Error(err)
	req.ErrorContains(err, "current-context must be defined")
}
