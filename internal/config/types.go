package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// DefaultContextName is the name of the default context.
	DefaultContextName = "default"
)

// Config holds the settings used to build lint configurations.
type Config struct {
	// Source is the file from which the configuration was loaded.
	Source string `json:"-" yaml:"-"`

	// Contexts is a map of context configurations, indexed by name.
	Contexts map[string]*Context `json:"contexts" yaml:"contexts"`

	// CurrentContext is the name of the context currently in use.
	CurrentContext string `json:"current-context" yaml:"current-context"`
}

func (config *Config) HasContext(name string) bool {
	return config.Contexts[name] != nil
}

// GetCurrentContext returns the current context.
// If no context is selected and none is defined, an empty context is returned.
func (config *Config) GetCurrentContext() (*Context, error) {
	if config.CurrentContext == "" && len(config.Contexts) == 0 {
		return &Context{Name: DefaultContextName}, nil
	}

	ctx, ok := config.Contexts[config.CurrentContext]
	if !ok {
		return nil, ContextNotFound(config.CurrentContext)
	}

	return ctx, nil
}

// SetContext adds a new context to the config.
// If a context with the same name already exists, it is overwritten.
func (config *Config) SetContext(name string, makeCurrent bool, context Context) {
	if config.Contexts == nil {
		config.Contexts = make(map[string]*Context)
	}

	context.Name = name
	config.Contexts[name] = &context

	if makeCurrent {
		config.CurrentContext = name
	}
}

// ResolvePath resolves a path relative to the directory of the configuration
// file. Absolute paths are returned as-is.
func (config *Config) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || config.Source == "" {
		return path
	}

	return filepath.Join(filepath.Dir(config.Source), path)
}

// Context describes how to build one lint configuration.
type Context struct {
	Name string `json:"-" yaml:"-"`

	// Base is the file holding the base configuration.
	// When empty, the built-in defaults are used.
	Base string `env:"LINTRC_BASE" json:"base,omitempty" yaml:"base,omitempty"`

	// Groups lists rule group files, applied in order after the built-in ones.
	Groups []string `env:"LINTRC_GROUPS" envSeparator:"," json:"groups,omitempty" yaml:"groups,omitempty"`

	// NoPreset disables the built-in rule groups.
	NoPreset bool `env:"LINTRC_NO_PRESET" json:"no-preset,omitempty" yaml:"no-preset,omitempty"`

	// Output is the file the built configuration is written to.
	Output string `env:"LINTRC_OUTPUT" json:"output,omitempty" yaml:"output,omitempty"`
}

func (context Context) IsEmpty() bool {
	return context.Base == "" && len(context.Groups) == 0 && !context.NoPreset && context.Output == ""
}

// Validate ensures that the context is usable.
func (context Context) Validate() error {
	for i, group := range context.Groups {
		if strings.TrimSpace(group) == "" {
			return ValidationError{
				Path:    fmt.Sprintf("$.contexts.'%s'.groups[%d]", context.Name, i),
				Message: "group files can not be empty",
			}
		}
	}

	if context.Output != "" {
		allowed := []string{".json", ".yaml", ".yml"}
		if !slices.Contains(allowed, strings.ToLower(filepath.Ext(context.Output))) {
			return ValidationError{
				Path:    fmt.Sprintf("$.contexts.'%s'.output", context.Name),
				Message: fmt.Sprintf("output must be a %s file", strings.Join(allowed, ", ")),
				Suggestions: []string{
					"Rename the output file to use a supported extension",
				},
			}
		}
	}

	return nil
}

// Minify returns a trimmed down version of the given configuration containing
// only the current context.
func Minify(config Config) (Config, error) {
	minified := config

	if config.CurrentContext == "" {
		return Config{}, errors.New("current-context must be defined in order to minify")
	}

	minified.Contexts = make(map[string]*Context, 1)
	for name, ctx := range config.Contexts {
		if name == minified.CurrentContext {
			minified.Contexts[name] = ctx
		}
	}

	return minified, nil
}
