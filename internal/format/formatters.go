package format

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

type Formatter func(output io.Writer, input any) error

func YAML(output io.Writer, input any) error {
	encoder := yaml.NewEncoder(
		output,
		yaml.Indent(2),
		yaml.IndentSequence(true),
		yaml.UseJSONMarshaler(),
	)

	return encoder.Encode(input)
}

func JSON(output io.Writer, input any) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	return encoder.Encode(input)
}

// ForFile returns the formatter matching the extension of the given file.
func ForFile(filename string) (Formatter, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return nil, fmt.Errorf("unrecognized format for '%s': expected a .json, .yaml or .yml file", filename)
	}
}
