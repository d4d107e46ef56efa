package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/grafana/lintrc/cmd/rules"
	"github.com/grafana/lintrc/cmd/testutils"
	"github.com/stretchr/testify/require"
)

func Test_GroupsCommand_table(t *testing.T) {
	testCase := testutils.CommandTestCase{
		Cmd:     rules.Command(),
		Command: []string{"groups", "--config", "testdata/config.yaml", "--context", "preset"},
		Assertions: []testutils.CommandAssertion{
			testutils.CommandSuccess(),
			testutils.CommandOutputContains("possible-errors"),
			testutils.CommandOutputContains("es6"),
			testutils.CommandOutputContains("built-in"),
			testutils.CommandOutputContains("team.yaml"),
		},
	}

	testCase.Run(t)
}

func Test_GroupsCommand_yaml(t *testing.T) {
	type listedGroup struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Source      string `yaml:"source"`
		Rules       int    `yaml:"rules"`
		Off         int    `yaml:"off"`
		Warn        int    `yaml:"warn"`
		Error       int    `yaml:"error"`
		Invalid     int    `yaml:"invalid"`
	}

	testCase := testutils.CommandTestCase{
		Cmd:     rules.Command(),
		Command: []string{"groups", "--config", "testdata/config.yaml", "-o", "yaml"},
		Assertions: []testutils.CommandAssertion{
			testutils.CommandSuccess(),
			func(t *testing.T, result testutils.CommandResult) {
				t.Helper()
				req := require.New(t)

				var groups []listedGroup
				req.NoError(yaml.Unmarshal([]byte(result.Stdout), &groups))

				req.Equal([]listedGroup{
					{
						Name:        "team",
						Description: "Team conventions",
						Source:      filepath.Join("testdata", "team.yaml"),
						Rules:       2,
						Off:         1,
						Error:       1,
					},
				}, groups)
			},
		},
	}

	testCase.Run(t)
}

func Test_GroupsCommand_json(t *testing.T) {
	testCase := testutils.CommandTestCase{
		Cmd:     rules.Command(),
		Command: []string{"groups", "--config", "testdata/config.yaml", "--group", "testdata/invalid.yaml", "-o", "json"},
		Assertions: []testutils.CommandAssertion{
			testutils.CommandSuccess(),
			testutils.CommandOutputContains(`"name": "invalid"`),
			testutils.CommandOutputContains(`"invalid": 1`),
		},
	}

	testCase.Run(t)
}

func Test_GroupsCommand_unknownFormat(t *testing.T) {
	testCase := testutils.CommandTestCase{
		Cmd:     rules.Command(),
		Command: []string{"groups", "--config", "testdata/config.yaml", "-o", "xml"},
		Assertions: []testutils.CommandAssertion{
			testutils.CommandErrorContains("unknown output format 'xml'. Valid formats are: json, table, yaml"),
		},
	}

	testCase.Run(t)
}
