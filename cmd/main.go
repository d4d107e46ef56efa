package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/grafana/lintrc/cmd/root"
	"github.com/grafana/lintrc/internal/config"
	"github.com/grafana/lintrc/internal/fail"
	"github.com/grafana/lintrc/internal/format"
)

var version = "SNAPSHOT"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := root.Command(version).ExecuteContext(ctx)
	stop()

	handleError(err)
}

func handleError(err error) {
	if err == nil {
		return
	}

	exitCode := 1
	detailedErr := errorToDetailedError(err)

	fmt.Fprintln(os.Stderr, detailedErr.Error())

	if detailedErr.ExitCode != nil {
		exitCode = *detailedErr.ExitCode
	}

	os.Exit(exitCode)
}

func errorToDetailedError(err error) *fail.DetailedError {
	var converted bool
	detailedErr := &fail.DetailedError{}
	if errors.As(err, detailedErr) {
		return detailedErr
	}

	// Try to convert the error for common error categories
	errorConverters := []func(err error) (*fail.DetailedError, bool){
		convertConfigErrors,   // Config-related
		convertDocumentErrors, // Base configuration and rule groups
		convertFSErrors,       // FS-related
	}

	for _, converter := range errorConverters {
		detailedErr, converted = converter(err)
		if converted {
			return detailedErr
		}
	}

	return &fail.DetailedError{
		Summary: "Unexpected error",
		Parent:  err,
	}
}

func convertConfigErrors(err error) (*fail.DetailedError, bool) {
	validationErr := config.ValidationError{}
	if errors.As(err, &validationErr) {
		message := fmt.Sprintf("Invalid configuration found in '%s':\n%s", validationErr.File, validationErr.Message)
		if validationErr.AnnotatedSource != "" {
			message += "\n\n" + validationErr.AnnotatedSource
		}

		return &fail.DetailedError{
			Summary: "Invalid configuration",
			Details: message,
			Suggestions: append([]string{
				"Review your configuration: lintrc config view",
			}, validationErr.Suggestions...),
		}, true
	}

	unmarshalErr := config.UnmarshalError{}
	if errors.As(err, &unmarshalErr) {
		return &fail.DetailedError{
			Summary: "Could not parse configuration",
			Details: fmt.Sprintf("Invalid configuration found in '%s'.", unmarshalErr.File),
			Parent:  unmarshalErr.Err,
		}, true
	}

	if errors.Is(err, config.ErrContextNotFound) {
		return &fail.DetailedError{
			Summary: "Invalid configuration",
			Parent:  err,
			Suggestions: []string{
				"Check for typos in the context name",
				"Review your configuration: lintrc config view",
			},
		}, true
	}

	return nil, false
}

func convertDocumentErrors(err error) (*fail.DetailedError, bool) {
	fieldErr := format.FieldError{}
	if errors.As(err, &fieldErr) {
		message := fmt.Sprintf("Invalid document '%s':\n%s", fieldErr.File, fieldErr.Message)
		if fieldErr.AnnotatedSource != "" {
			message += "\n\n" + fieldErr.AnnotatedSource
		}

		return &fail.DetailedError{
			Summary: "Malformed document",
			Details: message,
			Suggestions: []string{
				"Base configurations and rule groups must be mappings",
				"The 'rules' field must map rule identifiers to their value",
			},
		}, true
	}

	if errors.Is(err, format.ErrMalformedDocument) {
		return &fail.DetailedError{
			Summary: "Malformed document",
			Parent:  err,
			Suggestions: []string{
				"Base configurations and rule groups must be mappings",
			},
		}, true
	}

	return nil, false
}

func convertFSErrors(err error) (*fail.DetailedError, bool) {
	pathErr := &fs.PathError{}

	if errors.Is(err, os.ErrNotExist) && errors.As(err, &pathErr) {
		return &fail.DetailedError{
			Summary: "File not found",
			Details: fmt.Sprintf("could not read '%s'", pathErr.Path),
			Parent:  err,
			Suggestions: []string{
				"Check for typos in the command's arguments",
				"Relative paths found in a context are resolved from the directory of the configuration file",
			},
		}, true
	}

	if errors.Is(err, os.ErrPermission) && errors.As(err, &pathErr) {
		return &fail.DetailedError{
			Summary: "Permission denied",
			Parent:  err,
			Suggestions: []string{
				"Review the permissions on the file",
			},
		}, true
	}

	return nil, false
}
