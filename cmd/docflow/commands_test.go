// cmd/docflow/commands_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test the CLI commands end to end against temp workflow files

package docflow_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/docflow/cmd/docflow"
	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliWorkflows = `
[[catalog.correspondents]]
id = 1
name = "Acme"

[[catalog.tags]]
id = 1
name = "inbox"

[[workflows]]
id = 1
name = "Scans"

  [[workflows.triggers]]
  id = 1
  type = "consumption"
  sources = ["consume_folder"]
  filter_filename = "*simple*"

  [[workflows.actions]]
  id = 1
  assign_title = "{correspondent} {original_filename}"
  assign_correspondent = 1
  assign_tags = [1]

[[workflows]]
id = 2
name = "Updates"

  [[workflows.triggers]]
  id = 2
  type = "document_updated"
  matching_algorithm = "regex"
  match = "(unclosed"
`

const cliFixture = `
intake:
  source: consume_folder
  path: /scratch/simple.pdf
document:
  title: simple
`

type cliEnv struct {
	*testutil.TestEnvironment
	config  string
	fixture string
}

func setupCLI(t *testing.T) cliEnv {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	return cliEnv{
		TestEnvironment: env,
		config:          env.WriteFile("workflows.toml", cliWorkflows),
		fixture:         env.WriteFile("scan.yaml", cliFixture),
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := docflow.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunCmd_Text(t *testing.T) {
	env := setupCLI(t)

	out, err := execute(t, "run", "-c", env.config, "-d", env.fixture, "-f", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Trigger: CONSUMPTION\n")
	assert.Contains(t, out, "Document matched WorkflowTrigger 1 from Workflow: Scans\n")
	assert.Contains(t, out, "Document skipped Workflow: Updates: no applicable trigger type\n")
	assert.Contains(t, out, "No matching triggers with type CONSUMPTION found\n")
	assert.Contains(t, out, "Applied: Scans\n")
	assert.Contains(t, out, "* title            Acme simple\n")
	assert.Contains(t, out, "* correspondent    Acme\n")
	assert.Contains(t, out, "* tags             inbox\n")
}

func TestRunCmd_JSON(t *testing.T) {
	env := setupCLI(t)

	out, err := execute(t, "run", "-c", env.config, "-d", env.fixture, "--format", "json")
	require.NoError(t, err)

	var report struct {
		Trigger  string   `json:"trigger"`
		Applied  []string `json:"applied"`
		Mutation struct {
			Title struct {
				Set   bool   `json:"set"`
				Value string `json:"value"`
			} `json:"title"`
			Tags []int64 `json:"tags"`
		} `json:"mutation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "CONSUMPTION", report.Trigger)
	assert.Equal(t, []string{"Scans"}, report.Applied)
	assert.True(t, report.Mutation.Title.Set)
	assert.Equal(t, "Acme simple", report.Mutation.Title.Value)
	assert.Equal(t, []int64{1}, report.Mutation.Tags)
}

func TestRunCmd_TriggerOverride(t *testing.T) {
	env := setupCLI(t)

	out, err := execute(t, "run", "-c", env.config, "-d", env.fixture, "-f", "text", "-t", "document_updated")
	require.NoError(t, err)
	assert.Contains(t, out, "Document skipped Workflow: Scans: no applicable trigger type")
	assert.Contains(t, out, "Document did not match Workflow: Updates")
	assert.Contains(t, out, "No workflow matched.")
}

func TestRunCmd_Errors(t *testing.T) {
	env := setupCLI(t)

	_, err := execute(t, "run", "-c", env.config, "-d", env.fixture, "-t", "nightly")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTriggerType))

	_, err = execute(t, "run", "-c", env.config)
	assert.Error(t, err, "--document is required")

	_, err = execute(t, "run", "-c", env.config, "-d", env.Path("missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	_, err = execute(t, "run", "-c", env.config, "-d", env.fixture, "-f", "xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestValidateCmd(t *testing.T) {
	env := setupCLI(t)

	out, err := execute(t, "validate", "-c", env.config, "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "workflows.toml: 2 workflows, 2 triggers, 1 actions")
	assert.Contains(t, out, "Warnings:\n  - workflow 2 trigger 2")

	_, err = execute(t, "validate", "-c", env.config, "--strict")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestValidateCmd_Invalid(t *testing.T) {
	env := setupCLI(t)
	bad := env.WriteFile("bad.toml", "[[workflows]]\nname = \"x\"\n")

	_, err := execute(t, "validate", "-c", bad)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	problems := errors.GetErrorDetails(err)["problems"].([]string)
	assert.Equal(t, []string{"workflows[0]: id is required"}, problems)
}

func TestExampleCmd(t *testing.T) {
	env := setupCLI(t)

	out, err := execute(t, "example")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# docflow workflow file"))

	out, err = execute(t, "example", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "# fuzzy_threshold = 90")

	target := env.Path("new.toml")
	out, err = execute(t, "example", "-o", target)
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+target+"\n", out)

	_, err = execute(t, "validate", "-c", target)
	require.NoError(t, err, "generated example validates")

	_, err = execute(t, "example", "-o", target)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, err = execute(t, "example", "-o", target, "--force")
	assert.NoError(t, err)
}

func TestVersionCmd(t *testing.T) {
	setupCLI(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docflow version dev")
}

func TestHelpTopics(t *testing.T) {
	setupCLI(t)

	out, err := execute(t, "topics")
	require.NoError(t, err)
	for _, topic := range []string{"fixtures", "matching", "titles", "workflows", "--fuzzy-threshold"} {
		assert.Contains(t, out, topic)
	}

	out, err = execute(t, "help", "titles")
	require.NoError(t, err)
	assert.Contains(t, out, "original_filename")
}

func TestCompletionCmd(t *testing.T) {
	setupCLI(t)
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "docflow")
}

func TestManCmd(t *testing.T) {
	env := setupCLI(t)

	_, err := execute(t, "man", "--dir", env.Path("man"))
	require.NoError(t, err)
	assert.True(t, env.FileExists("man/docflow.1"))
	assert.True(t, env.FileExists("man/docflow-run.1"))
}
