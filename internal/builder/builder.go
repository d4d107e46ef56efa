package builder

import (
	"context"
	"errors"
	"log/slog"

	"github.com/grafana/grafana-app-sdk/logging"
	"github.com/grafana/lintrc/internal/lintconfig"
	"github.com/grafana/lintrc/internal/preset"
	"github.com/grafana/lintrc/internal/rules"
	"golang.org/x/sync/errgroup"
)

type Option func(b *Builder) error

// WithBase sets the file holding the base configuration.
// Without it, the preset's default configuration is used.
func WithBase(path string) Option {
	return func(b *Builder) error {
		b.basePath = path
		return nil
	}
}

// WithGroupFiles adds rule group files, applied after every other group.
func WithGroupFiles(paths []string) Option {
	return func(b *Builder) error {
		for _, path := range paths {
			if path == "" {
				return errors.New("rule group file paths can not be empty")
			}
		}

		b.groupFiles = append(b.groupFiles, paths...)
		return nil
	}
}

// WithGroups adds in-memory rule groups, applied after the preset ones and
// before the ones loaded from files.
func WithGroups(groups ...rules.Group) Option {
	return func(b *Builder) error {
		b.groups = append(b.groups, groups...)
		return nil
	}
}

// WithPreset toggles the built-in rule groups.
func WithPreset(enabled bool) Option {
	return func(b *Builder) error {
		b.preset = enabled
		return nil
	}
}

// MaxConcurrency limits how many group files are read concurrently.
func MaxConcurrency(maxConcurrency int) Option {
	return func(b *Builder) error {
		if maxConcurrency < 1 {
			return errors.New("max-concurrency must be greater than zero")
		}

		b.maxConcurrency = maxConcurrency
		return nil
	}
}

// Builder loads a base configuration and rule groups, and combines them.
type Builder struct {
	basePath       string
	groupFiles     []string
	groups         []rules.Group
	preset         bool
	maxConcurrency int
}

// Result holds a built configuration along with everything that went into it.
type Result struct {
	// BasePath is the file the base configuration was read from. Empty when
	// the default configuration was used.
	BasePath string
	Base     lintconfig.Configuration
	// Groups lists the rule groups in the order in which they were applied.
	Groups []rules.Group
	// Combined is the combination of every group's rules.
	Combined rules.Table
	// Configuration is the final configuration.
	Configuration lintconfig.Configuration
}

func New(opts ...Option) (*Builder, error) {
	builder := &Builder{
		preset:         true,
		maxConcurrency: 10,
	}

	for _, opt := range opts {
		if err := opt(builder); err != nil {
			return nil, err
		}
	}

	return builder, nil
}

// Files returns the files read by the builder.
func (builder *Builder) Files() []string {
	var files []string
	if builder.basePath != "" {
		files = append(files, builder.basePath)
	}

	return append(files, builder.groupFiles...)
}

// Groups returns the rule groups that would be applied, in order.
func (builder *Builder) Groups(ctx context.Context) ([]rules.Group, error) {
	var groups []rules.Group

	if builder.preset {
		presetGroups, err := preset.Groups()
		if err != nil {
			return nil, err
		}

		groups = append(groups, presetGroups...)
	}

	groups = append(groups, builder.groups...)

	fileGroups, err := builder.loadGroupFiles(ctx)
	if err != nil {
		return nil, err
	}

	return append(groups, fileGroups...), nil
}

// Build loads the base configuration and every rule group, then combines them.
func (builder *Builder) Build(ctx context.Context) (Result, error) {
	logger := logging.FromContext(ctx).With(slog.String("component", "builder"))

	base, err := builder.loadBase(ctx)
	if err != nil {
		return Result{}, err
	}

	groups, err := builder.Groups(ctx)
	if err != nil {
		return Result{}, err
	}

	tables := rules.Tables(groups)

	built, err := lintconfig.Build(base, tables...)
	if err != nil {
		return Result{}, err
	}

	combined := rules.Combine(tables...)

	logger.Info("Configuration built",
		slog.Int("groups", len(groups)),
		slog.Int("rules", len(combined)),
	)

	return Result{
		BasePath:      builder.basePath,
		Base:          base,
		Groups:        groups,
		Combined:      combined,
		Configuration: built,
	}, nil
}

func (builder *Builder) loadBase(ctx context.Context) (lintconfig.Configuration, error) {
	if builder.basePath == "" {
		logging.FromContext(ctx).Debug("No base configuration given: using defaults")
		return preset.Defaults()
	}

	return lintconfig.Load(ctx, builder.basePath)
}

// loadGroupFiles reads the group files concurrently. The returned groups are
// in the same order as the files.
func (builder *Builder) loadGroupFiles(ctx context.Context) ([]rules.Group, error) {
	if len(builder.groupFiles) == 0 {
		return nil, nil
	}

	groups := make([]rules.Group, len(builder.groupFiles))

	gr, ctx := errgroup.WithContext(ctx)
	gr.SetLimit(builder.maxConcurrency)

	for i, file := range builder.groupFiles {
		gr.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			group, err := rules.LoadGroup(ctx, file)
			if err != nil {
				return err
			}

			groups[i] = group

			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	return groups, nil
}
