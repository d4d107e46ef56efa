package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/grafana/lintrc/cmd/io"
	"github.com/grafana/lintrc/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//nolint:gochecknoglobals
var binaryName = path.Base(os.Args[0])

type Options struct {
	ConfigFile string
	Context    string
}

func (opts *Options) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&opts.ConfigFile, "config", "", "Path to the configuration file to use")
	flags.StringVar(&opts.Context, "context", "", "Name of the context to use")

	_ = cobra.MarkFlagFilename(flags, "config", "yaml", "yml")
}

// loadConfigTolerant loads the configuration file (default, or explicitly set via flags)
// and returns it without validation.
// This function should only be used by config-related commands, to allow the
// user to iterate on the configuration until it becomes valid.
func (opts *Options) loadConfigTolerant(ctx context.Context, extraOverrides ...config.Override) (config.Config, error) {
	overrides := append([]config.Override{
		// If lintrc-related env variables are set, use them to configure the
		// current context.
		func(cfg *config.Config) error {
			envCtx := config.Context{}

			if err := env.Parse(&envCtx); err != nil {
				return err
			}

			if envCtx.IsEmpty() {
				return nil
			}

			// paths given through the environment are relative to the working
			// directory, not to the configuration file.
			if err := absolutePaths(&envCtx); err != nil {
				return err
			}

			cfg.SetContext(config.DefaultContextName, true, envCtx)

			return nil
		},
	}, extraOverrides...)

	// The current context is being overridden by a flag
	if opts.Context != "" {
		overrides = append(overrides, func(cfg *config.Config) error {
			if !cfg.HasContext(opts.Context) {
				return config.ContextNotFound(opts.Context)
			}

			cfg.CurrentContext = opts.Context
			return nil
		})
	}

	return config.Load(ctx, opts.configSource(), overrides...)
}

// LoadConfig loads the configuration file (default, or explicitly set via flags)
// and validates it.
func (opts *Options) LoadConfig(ctx context.Context) (config.Config, error) {
	validator := func(cfg *config.Config) error {
		current, err := cfg.GetCurrentContext()
		if err != nil {
			return err
		}

		return current.Validate()
	}

	return opts.loadConfigTolerant(ctx, validator)
}

// LoadContext loads and validates the configuration, then returns its current
// context with every path resolved.
func (opts *Options) LoadContext(ctx context.Context) (config.Context, error) {
	cfg, err := opts.LoadConfig(ctx)
	if err != nil {
		return config.Context{}, err
	}

	current, err := cfg.GetCurrentContext()
	if err != nil {
		return config.Context{}, err
	}

	resolved := *current
	resolved.Base = cfg.ResolvePath(current.Base)
	resolved.Output = cfg.ResolvePath(current.Output)
	resolved.Groups = make([]string, 0, len(current.Groups))
	for _, group := range current.Groups {
		resolved.Groups = append(resolved.Groups, cfg.ResolvePath(group))
	}

	return resolved, nil
}

func (opts *Options) configSource() config.Source {
	if opts.ConfigFile != "" {
		return config.ExplicitConfigFile(opts.ConfigFile)
	}

	return config.StandardLocation()
}

func absolutePaths(ctx *config.Context) error {
	toAbsolute := func(file string) (string, error) {
		if file == "" {
			return "", nil
		}

		return filepath.Abs(file)
	}

	var err error
	if ctx.Base, err = toAbsolute(ctx.Base); err != nil {
		return err
	}

	if ctx.Output, err = toAbsolute(ctx.Output); err != nil {
		return err
	}

	for i := range ctx.Groups {
		if ctx.Groups[i], err = toAbsolute(ctx.Groups[i]); err != nil {
			return err
		}
	}

	return nil
}

func Command() *cobra.Command {
	configOpts := &Options{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or manipulate configuration settings",
		Long: fmt.Sprintf(`View or manipulate configuration settings.

The configuration file to load is chosen as follows:

1. If the --config flag is set, then that file will be loaded. No other location will be considered.
2. If the $XDG_CONFIG_HOME environment variable is set, then it will be used: $XDG_CONFIG_HOME/%[1]s/%[2]s
   Example: /home/user/.config/%[1]s/%[2]s
3. If the $HOME environment variable is set, then it will be used: $HOME/.config/%[1]s/%[2]s
   Example: /home/user/.config/%[1]s/%[2]s
4. If the $XDG_CONFIG_DIRS environment variable is set, then it will be used: $XDG_CONFIG_DIRS/%[1]s/%[2]s
   Example: /etc/xdg/%[1]s/%[2]s

Relative paths found in a context are resolved from the directory of the configuration file.
`, config.StandardConfigFolder, config.StandardConfigFileName),
	}

	configOpts.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(checkCmd(configOpts))
	cmd.AddCommand(currentContextCmd(configOpts))
	cmd.AddCommand(useContextCmd(configOpts))
	cmd.AddCommand(viewCmd(configOpts))

	return cmd
}

type viewOpts struct {
	IO io.Options

	Minify bool
}

func (opts *viewOpts) BindFlags(flags *pflag.FlagSet) {
	opts.IO.BindFlags(flags)

	flags.BoolVar(&opts.Minify, "minify", opts.Minify, "Remove all information not used by current-context from the output")
}

func (opts *viewOpts) Validate() error {
	if err := opts.IO.Validate(); err != nil {
		return err
	}

	return nil
}

func viewCmd(configOpts *Options) *cobra.Command {
	opts := &viewOpts{}

	cmd := &cobra.Command{
		Use:     "view",
		Args:    cobra.NoArgs,
		Short:   "Display the current configuration",
		Example: "\n\t" + binaryName + " config view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}

			cfg, err := configOpts.loadConfigTolerant(cmd.Context())
			if err != nil {
				return err
			}

			if opts.Minify {
				cfg, err = config.Minify(cfg)
				if err != nil {
					return err
				}
			}

			if err := opts.IO.Format(cmd.OutOrStdout(), cfg); err != nil {
				return err
			}

			return nil
		},
	}

	opts.BindFlags(cmd.Flags())

	return cmd
}

func checkCmd(configOpts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Args:    cobra.NoArgs,
		Short:   "Check the current configuration for issues",
		Long:    "Check the current configuration for issues.",
		Example: "\n\t" + binaryName + " config check",
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := configOpts.LoadContext(cmd.Context())
			if err != nil {
				return err
			}

			io.Success(cmd.OutOrStdout(), "Context \"%s\" is valid", current.Name)

			return nil
		},
	}

	return cmd
}

func currentContextCmd(configOpts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "current-context",
		Args:    cobra.NoArgs,
		Short:   "Display the current context name",
		Long:    "Display the current context name.",
		Example: "\n\t" + binaryName + " config current-context",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configOpts.loadConfigTolerant(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(cfg.CurrentContext)

			return nil
		},
	}

	return cmd
}

func useContextCmd(configOpts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "use-context CONTEXT_NAME",
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"use"},
		Short:   "Set the current context",
		Long:    "Set the current context and updates the configuration file.",
		Example: "\n\t" + binaryName + " config use-context web",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configOpts.loadConfigTolerant(cmd.Context())
			if err != nil {
				return err
			}

			if !cfg.HasContext(args[0]) {
				return config.ContextNotFound(args[0])
			}

			cfg.CurrentContext = args[0]

			if err := config.Write(cmd.Context(), configOpts.configSource(), cfg); err != nil {
				return err
			}

			io.Success(cmd.OutOrStdout(), "Context set to \"%s\"", cfg.CurrentContext)
			return nil
		},
	}

	return cmd
}
