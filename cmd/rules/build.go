package rules

import (
	"context"
	"errors"
	"log/slog"

	"github.com/grafana/grafana-app-sdk/logging"
	"github.com/grafana/lintrc/cmd/config"
	cmdio "github.com/grafana/lintrc/cmd/io"
	"github.com/grafana/lintrc/internal/builder"
	"github.com/grafana/lintrc/internal/lintconfig"
	"github.com/grafana/lintrc/internal/logs"
	"github.com/grafana/lintrc/internal/watch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type buildCmdOpts struct {
	Build buildOpts
	IO    cmdio.Options

	OutputFile string
	Watch      bool
}

func (opts *buildCmdOpts) BindFlags(flags *pflag.FlagSet) {
	opts.Build.BindFlags(flags)
	opts.IO.BindFlags(flags)

	flags.StringVarP(&opts.OutputFile, "output-file", "f", "", "File to write the configuration to. Its extension selects the format. Overrides the context's output")
	flags.BoolVarP(&opts.Watch, "watch", "w", false, "Rebuild the configuration whenever one of its source files changes")

	_ = cobra.MarkFlagFilename(flags, "output-file", "json", "yaml", "yml")
}

func (opts *buildCmdOpts) Validate() error {
	if err := opts.Build.Validate(); err != nil {
		return err
	}

	return opts.IO.Validate()
}

func buildCmd(configOpts *config.Options) *cobra.Command {
	opts := &buildCmdOpts{}

	cmd := &cobra.Command{
		Use:   "build",
		Args:  cobra.NoArgs,
		Short: "Build the configuration",
		Long: `Build the configuration by applying the rule groups onto the base configuration.

The result is written to the file given by --output-file, or by the current context.
Without output file, it is printed on the standard output.`,
		Example: "\n\t" + binaryName + " rules build\n\t" +
			binaryName + " rules build -o json\n\t" +
			binaryName + " rules build --group ./rules/team.yaml --output-file .eslintrc.json\n\t" +
			binaryName + " rules build --output-file .eslintrc.json --watch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()

			b, current, err := opts.Build.builder(ctx, configOpts)
			if err != nil {
				return err
			}

			outputFile := current.Output
			if opts.OutputFile != "" {
				outputFile = opts.OutputFile
			}

			if opts.Watch && outputFile == "" {
				return errors.New("--watch requires an output file")
			}

			build := func(ctx context.Context) error {
				result, err := b.Build(ctx)
				if err != nil {
					return err
				}

				if outputFile == "" {
					return opts.IO.Format(cmd.OutOrStdout(), result.Configuration)
				}

				if err := lintconfig.Write(ctx, outputFile, result.Configuration); err != nil {
					return err
				}

				cmdio.Success(cmd.OutOrStdout(), "Configuration written to %s", outputFile)

				return nil
			}

			if err := build(ctx); err != nil {
				return err
			}

			if !opts.Watch {
				return nil
			}

			return watchAndRebuild(ctx, cmd, b, build)
		},
	}

	opts.BindFlags(cmd.Flags())

	return cmd
}

func watchAndRebuild(ctx context.Context, cmd *cobra.Command, b *builder.Builder, build func(context.Context) error) error {
	logger := logging.FromContext(ctx)

	files := b.Files()
	if len(files) == 0 {
		cmdio.Info(cmd.OutOrStdout(), "Only built-in sources are used: nothing to watch")
		return nil
	}

	watcher, err := watch.NewWatcher(ctx, func(file string) {
		logger.Info("Change detected, rebuilding", slog.String("file", file))

		if err := build(ctx); err != nil {
			// a broken file must not end the watch: it is likely being edited
			logger.Warn("Rebuild failed", logs.Err(err))
			cmdio.Warning(cmd.OutOrStdout(), "Build failed: %s", err)
		}
	})
	if err != nil {
		return err
	}

	if err := watcher.Add(files...); err != nil {
		_ = watcher.Close()
		return err
	}

	cmdio.Info(cmd.OutOrStdout(), "Watching %d %s for changes", len(files), pluralize("file", len(files)))

	watcher.Watch()

	return nil
}

func pluralize(singular string, count int) string {
	if count == 1 {
		return singular
	}

	return singular + "s"
}
