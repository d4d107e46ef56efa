package format_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/grafana/lintrc/internal/format"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	req := require.New(t)

	document, err := format.ParseDocument([]byte(`
env:
  node: true
rules:
  no-console: 2
  semi: [2, "never"]
  max-len: [2, {code: 120, ratio: 0.5}]
`))
	req.NoError(err)

	req.Equal(map[string]any{
		"env": map[string]any{"node": true},
		"rules": map[string]any{
			"no-console": 2,
			"semi":       []any{2, "never"},
			"max-len":    []any{2, map[string]any{"code": 120, "ratio": 0.5}},
		},
	}, document)
}

func TestParseDocument_json(t *testing.T) {
	req := require.New(t)

	document, err := format.ParseDocument([]byte(`{"rules": {"eqeqeq": [2, "smart"]}}`))
	req.NoError(err)

	req.Equal(map[string]any{
		"rules": map[string]any{"eqeqeq": []any{2, "smart"}},
	}, document)
}

func TestParseDocument_empty(t *testing.T) {
	req := require.New(t)

	document, err := format.ParseDocument([]byte(""))
	req.NoError(err)
	req.Empty(document)
	req.NotNil(document)
}

func TestParseDocument_notAMapping(t *testing.T) {
	req := require.New(t)

	_, err := format.ParseDocument([]byte("- 1\n- 2\n"))
	req.ErrorIs(err, format.ErrMalformedDocument)
	req.ErrorContains(err, "got a list")
}

func TestMappingField(t *testing.T) {
	req := require.New(t)

	rules, err := format.MappingField(map[string]any{"rules": map[string]any{"semi": 2}}, "rules")
	req.NoError(err)
	req.Equal(map[string]any{"semi": 2}, rules)

	rules, err = format.MappingField(map[string]any{}, "rules")
	req.NoError(err)
	req.Nil(rules)

	_, err = format.MappingField(map[string]any{"rules": []any{1}}, "rules")
	req.ErrorIs(err, format.ErrMalformedDocument)
	req.ErrorAs(err, &format.FieldError{})
	req.ErrorContains(err, "'rules' must be a mapping, got a list")
}

func TestAnnotateSource(t *testing.T) {
	req := require.New(t)
	color.NoColor = true

	source := []byte("env:\n  node: true\nrules: 2\n")
	document, err := format.ParseDocument(source)
	req.NoError(err)

	_, err = format.MappingField(document, "rules")
	err = format.AnnotateSource("base.yaml", source, err)

	fieldErr := format.FieldError{}
	req.ErrorAs(err, &fieldErr)
	req.Equal("base.yaml", fieldErr.File)
	req.Equal("$.rules", fieldErr.Path)
	req.Contains(fieldErr.AnnotatedSource, "rules: 2")
}

func TestForFile(t *testing.T) {
	req := require.New(t)

	for _, file := range []string{"out.json", "out.yaml", "dir/out.YML"} {
		formatter, err := format.ForFile(file)
		req.NoError(err)
		req.NotNil(formatter)
	}

	_, err := format.ForFile("out.txt")
	req.ErrorContains(err, "unrecognized format")
}

func TestFormatters(t *testing.T) {
	req := require.New(t)
	input := map[string]any{"rules": map[string]any{"semi": []any{2, "never"}}}

	buffer := &bytes.Buffer{}
	req.NoError(format.JSON(buffer, input))
	req.Equal(`{
  "rules": {
    "semi": [
      2,
      "never"
    ]
  }
}
`, buffer.String())

	buffer.Reset()
	req.NoError(format.YAML(buffer, input))
	req.Equal(`rules:
  semi:
    - 2
    - never
`, buffer.String())
}

func TestAnnotateSource_otherErrors(t *testing.T) {
	req := require.New(t)

	_, err := format.ParseDocument([]byte("- 1"))
	err = format.AnnotateSource("base.yaml", []byte("- 1"), err)

	req.ErrorIs(err, format.ErrMalformedDocument)
	req.ErrorContains(err, "could not parse 'base.yaml'")
	req.NoError(format.AnnotateSource("base.yaml", nil, nil))
}
