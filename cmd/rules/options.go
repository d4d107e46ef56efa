package rules

import (
	"context"
	"errors"

	"github.com/grafana/lintrc/cmd/config"
	"github.com/grafana/lintrc/internal/builder"
	internalconfig "github.com/grafana/lintrc/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// buildOpts holds the flags shared by every command that needs to build a
// configuration. They take precedence over the current context.
type buildOpts struct {
	Base          string
	Groups        []string
	NoPreset      bool
	MaxConcurrent int
}

func (opts *buildOpts) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&opts.Base, "base", "", "Path to the base configuration. Overrides the one set in the current context")
	flags.StringArrayVarP(&opts.Groups, "group", "g", nil, "Path to a rule group file, applied after the context's groups. Can be repeated")
	flags.BoolVar(&opts.NoPreset, "no-preset", false, "Do not apply the built-in rule groups")
	flags.IntVar(&opts.MaxConcurrent, "max-concurrent", 10, "Maximum number of rule group files read concurrently")

	_ = cobra.MarkFlagFilename(flags, "base", "json", "yaml", "yml")
	_ = cobra.MarkFlagFilename(flags, "group", "yaml", "yml", "json")
}

func (opts *buildOpts) Validate() error {
	if opts.MaxConcurrent < 1 {
		return errors.New("max-concurrent must be greater than zero")
	}

	return nil
}

// builder loads the current context and returns it along with a builder
// configured from it and from the flags.
func (opts *buildOpts) builder(ctx context.Context, configOpts *config.Options) (*builder.Builder, internalconfig.Context, error) {
	current, err := configOpts.LoadContext(ctx)
	if err != nil {
		return nil, internalconfig.Context{}, err
	}

	base := current.Base
	if opts.Base != "" {
		base = opts.Base
	}

	groups := append([]string{}, current.Groups...)
	groups = append(groups, opts.Groups...)

	b, err := builder.New(
		builder.WithBase(base),
		builder.WithGroupFiles(groups),
		builder.WithPreset(!opts.NoPreset && !current.NoPreset),
		builder.MaxConcurrency(opts.MaxConcurrent),
	)
	if err != nil {
		return nil, internalconfig.Context{}, err
	}

	return b, current, nil
}
