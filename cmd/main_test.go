package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/grafana/lintrc/internal/config"
	"github.com/grafana/lintrc/internal/fail"
	"github.com/grafana/lintrc/internal/format"
	"github.com/stretchr/testify/require"
)

func TestErrorToDetailedError_detailedErrorsAreKept(t *testing.T) {
	req := require.New(t)

	err := fmt.Errorf("wrapped: %w", fail.DetailedError{Summary: "Check failed"}.WithExitCode(2))

	detailedErr := errorToDetailedError(err)

	req.Equal("Check failed", detailedErr.Summary)
	req.NotNil(detailedErr.ExitCode)
	req.Equal(2, *detailedErr.ExitCode)
}

func TestErrorToDetailedError_validationError(t *testing.T) {
	req := require.New(t)

	err := config.ValidationError{
		File:        "config.yaml",
		Message:     "output must be a .json, .yaml, .yml file",
		Suggestions: []string{"Rename the output file"},
	}

	detailedErr := errorToDetailedError(err)

	req.Equal("Invalid configuration", detailedErr.Summary)
	req.Contains(detailedErr.Details, "Invalid configuration found in 'config.yaml'")
	req.Contains(detailedErr.Suggestions, "Rename the output file")
}

func TestErrorToDetailedError_contextNotFound(t *testing.T) {
	req := require.New(t)

	detailedErr := errorToDetailedError(config.ContextNotFound("nope"))

	req.Equal(`Context "nope" does not exist`, detailedErr.Summary)
}

func TestErrorToDetailedError_malformedDocument(t *testing.T) {
	req := require.New(t)

	err := fmt.Errorf("loading group: %w", format.FieldError{
		File:    "team.yaml",
		Path:    "$.rules",
		Message: "'rules' must be a mapping, got list",
	})

	detailedErr := errorToDetailedError(err)

	req.Equal("Malformed document", detailedErr.Summary)
	req.Contains(detailedErr.Details, "Invalid document 'team.yaml'")
}

func TestErrorToDetailedError_fileNotFound(t *testing.T) {
	req := require.New(t)

	_, err := os.ReadFile("does-not-exist.yaml")
	req.Error(err)

	detailedErr := errorToDetailedError(err)

	req.Equal("File not found", detailedErr.Summary)
	req.Contains(detailedErr.Details, "does-not-exist.yaml")
}

func TestErrorToDetailedError_unexpected(t *testing.T) {
	req := require.New(t)

	detailedErr := errorToDetailedError(errors.New("boom"))

	req.Equal("Unexpected error", detailedErr.Summary)
}
