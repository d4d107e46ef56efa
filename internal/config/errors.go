package config

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/grafana/lintrc/internal/fail"
)

var ErrContextNotFound = errors.New("context not found")

type ValidationError struct {
	// Path refers to the location of the error in the configuration file.
	// It is expressed as a YAMLPath, as described in https://pkg.go.dev/github.com/goccy/go-yaml#PathString
	Path        string
	Message     string
	Suggestions []string

	File            string
	AnnotatedSource string
}

func (e ValidationError) Error() string {
	return e.Message
}

type UnmarshalError struct {
	File string
	Err  error
}

func (e UnmarshalError) Error() string {
	return fmt.Sprintf("could not parse configuration '%s': %s", e.File, e.Err)
}

func (e UnmarshalError) Unwrap() error {
	return e.Err
}

func ContextNotFound(name string) error {
	return fail.DetailedError{
		Summary: "Context \"" + name + "\" does not exist",
		Parent:  ErrContextNotFound,
		Suggestions: []string{
			"Check for typos in the context name",
			fmt.Sprintf("Review your configuration: %s config view", path.Base(os.Args[0])),
		},
	}
}
