package lintconfig

import (
	"context"
	"log/slog"
	"os"

	"github.com/grafana/grafana-app-sdk/logging"
	"github.com/grafana/lintrc/internal/format"
)

const outputFilePermissions = 0o644

// Parse decodes a configuration document, in YAML or JSON.
// The document must be a mapping, and its "rules" field (if any) a mapping too.
func Parse(contents []byte) (Configuration, error) {
	document, err := format.ParseDocument(contents)
	if err != nil {
		return nil, err
	}

	cfg := Configuration(document)
	if _, err := cfg.Rules(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and decodes a configuration document from a file.
func Load(ctx context.Context, filename string) (Configuration, error) {
	logging.FromContext(ctx).Debug("Loading configuration", slog.String("filename", filename))

	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(contents)
	if err != nil {
		return nil, format.AnnotateSource(filename, contents, err)
	}

	return cfg, nil
}

// Write encodes the configuration to the given file. The format is inferred
// from the file extension.
func Write(ctx context.Context, filename string, cfg Configuration) error {
	formatter, err := format.ForFile(filename)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("Writing configuration", slog.String("filename", filename))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermissions)
	if err != nil {
		return err
	}

	if err := formatter(file, cfg); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
