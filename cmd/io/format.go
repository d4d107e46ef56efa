// Package io holds the output helpers shared by commands: the --output flag
// selecting how documents and reports are rendered, and colored messages.
package io

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/grafana/lintrc/internal/format"
	"github.com/spf13/pflag"
)

const defaultOutputFormat = "yaml"

// Options selects the format used to render a command's output.
//
// Every command can render configurations as yaml or json. Commands producing
// something else (check reports, group listings) register their own formats
// and usually make one of them the default.
type Options struct {
	OutputFormat string

	customFormats map[string]format.Formatter
	defaultFormat string
}

// RegisterCustomFormat makes a format available to the --output flag.
// A custom format takes precedence over a built-in one with the same name.
// It must be called before BindFlags.
func (opts *Options) RegisterCustomFormat(name string, formatter format.Formatter) {
	if opts.customFormats == nil {
		opts.customFormats = make(map[string]format.Formatter)
	}

	opts.customFormats[strings.ToLower(name)] = formatter
}

// DefaultFormat sets the format used when --output is not given.
// It must be called before BindFlags.
func (opts *Options) DefaultFormat(name string) {
	opts.defaultFormat = strings.ToLower(name)
}

func (opts *Options) BindFlags(flags *pflag.FlagSet) {
	defaultFormat := defaultOutputFormat
	if opts.defaultFormat != "" {
		defaultFormat = opts.defaultFormat
	}

	opts.OutputFormat = defaultFormat

	flags.StringVarP(&opts.OutputFormat, "output", "o", defaultFormat, "Output format. One of: "+strings.Join(opts.allowedFormats(), ", "))
}

// Validate checks that the selected format is known. Format names are case
// insensitive.
func (opts *Options) Validate() error {
	opts.OutputFormat = strings.ToLower(strings.TrimSpace(opts.OutputFormat))
	if opts.OutputFormat == "" {
		opts.OutputFormat = defaultOutputFormat
		if opts.defaultFormat != "" {
			opts.OutputFormat = opts.defaultFormat
		}
	}

	if opts.formatterFor(opts.OutputFormat) == nil {
		return opts.unknownFormatError()
	}

	return nil
}

// Format renders the input in the selected format.
func (opts *Options) Format(out io.Writer, input any) error {
	formatter := opts.formatterFor(strings.ToLower(opts.OutputFormat))
	if formatter == nil {
		return opts.unknownFormatError()
	}

	return formatter(out, input)
}

func (opts *Options) unknownFormatError() error {
	return fmt.Errorf("unknown output format '%s'. Valid formats are: %s", opts.OutputFormat, strings.Join(opts.allowedFormats(), ", "))
}

func (opts *Options) formatterFor(name string) format.Formatter {
	if formatter, found := opts.customFormats[name]; found {
		return formatter
	}

	return builtinFormatters()[name]
}

func builtinFormatters() map[string]format.Formatter {
	return map[string]format.Formatter{
		"yaml": format.YAML,
		"json": format.JSON,
	}
}

// allowedFormats returns the sorted names of every usable format.
func (opts *Options) allowedFormats() []string {
	names := maps.Clone(opts.customFormats)
	if names == nil {
		names = make(map[string]format.Formatter)
	}

	maps.Copy(names, builtinFormatters())

	return slices.Sorted(maps.Keys(names))
}
