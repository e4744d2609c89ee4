// pkg/config/loader_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test layered loading of workflow files, env and overrides

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/docflow/pkg/config"
	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workflowTOML = `
[settings]
output_format = "json"

[[catalog.tags]]
id = 1
name = "inbox"

[[workflows]]
id = 1
name = "Scans"
order = 5

  [[workflows.triggers]]
  id = 1
  type = "consumption"
  sources = ["consume_folder", "mail_fetch"]
  filter_filename = "*.pdf"

  [[workflows.actions]]
  id = 1
  assign_tags = [1]
  assign_custom_fields = [4]
  assign_custom_field_values = { "4" = "x" }

  [[workflows.actions]]
  id = 2
  type = "removal"
  remove_all_owners = true

[[workflows]]
id = 2
name = "Disabled"
enabled = false

  [[workflows.triggers]]
  id = 2
  type = "document_updated"
  matching_algorithm = "any_word"
  match = "foo bar"
  is_insensitive = true
`

const workflowYAML = `
workflows:
  - id: 7
    name: From yaml
    triggers:
      - id: 1
        type: document_added
        filter_has_tags: [1, 2]
    actions:
      - id: 1
        assign_title: "{correspondent}"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfiguration_Defaults(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Settings.OutputFormat)
	assert.Equal(t, 90, cfg.Settings.FuzzyThreshold)
	assert.Empty(t, cfg.Workflows)
}

func TestLoadConfiguration_TOML(t *testing.T) {
	cfg, err := config.LoadConfiguration(writeFile(t, "workflows.toml", workflowTOML))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Settings.OutputFormat)
	assert.Equal(t, 90, cfg.Settings.FuzzyThreshold, "defaults survive")

	wfs := cfg.WorkflowSet()
	require.Len(t, wfs, 2)

	scans := wfs[0]
	assert.True(t, scans.Enabled)
	assert.Equal(t, 5, scans.Order)
	require.Len(t, scans.Triggers, 1)
	assert.Equal(t, types.TriggerConsumption, scans.Triggers[0].Type)
	assert.Equal(t, []types.DocumentSource{types.SourceConsumeFolder, types.SourceMailFetch}, scans.Triggers[0].Sources)
	assert.Equal(t, "*.pdf", scans.Triggers[0].FilterFilename)

	require.Len(t, scans.Actions, 2)
	assert.Equal(t, types.ActionAssignment, scans.Actions[0].Type)
	assert.Equal(t, []types.ID{1}, scans.Actions[0].AssignTags.Items())
	v, ok := scans.Actions[0].CustomFieldDefault(4)
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, types.ActionRemoval, scans.Actions[1].Type)
	assert.True(t, scans.Actions[1].RemoveAllOwners)

	disabled := wfs[1]
	assert.False(t, disabled.Enabled)
	assert.Equal(t, types.MatchAnyWord, disabled.Triggers[0].MatchingAlgorithm)
	assert.True(t, disabled.Triggers[0].IsInsensitive)

	names, err := cfg.Names()
	require.NoError(t, err)
	assert.Equal(t, "inbox", types.DisplayName(names, types.KindTag, 1))
}

func TestLoadConfiguration_YAML(t *testing.T) {
	cfg, err := config.LoadConfiguration(writeFile(t, "workflows.yaml", workflowYAML))
	require.NoError(t, err)

	wfs := cfg.WorkflowSet()
	require.Len(t, wfs, 1)
	assert.Equal(t, "From yaml", wfs[0].Name)
	assert.Equal(t, types.TriggerDocumentAdded, wfs[0].Triggers[0].Type)
	assert.Equal(t, []types.ID{1, 2}, wfs[0].Triggers[0].FilterHasTags.Items())
	assert.Equal(t, "{correspondent}", wfs[0].Actions[0].AssignTitle)
}

func TestLoadConfiguration_EnvAndOverrides(t *testing.T) {
	t.Setenv("DOCFLOW_FUZZY_THRESHOLD", "75")
	t.Setenv("DOCFLOW_OUTPUT_FORMAT", "text")

	cfg, err := config.LoadConfiguration(writeFile(t, "workflows.toml", workflowTOML))
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.Settings.FuzzyThreshold)
	assert.Equal(t, "text", cfg.Settings.OutputFormat, "env beats the file")

	cfg, err = config.LoadWithOverrides("", map[string]interface{}{"settings.output_format": "terminal"})
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Settings.OutputFormat, "overrides beat env")
}

func TestLoadConfiguration_Errors(t *testing.T) {
	_, err := config.LoadConfiguration(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	_, err = config.LoadConfiguration(writeFile(t, "workflows.ini", "x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	_, err = config.LoadConfiguration(writeFile(t, "bad.toml", "[[workflows]\nid ="))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	bad := `
[[workflows]]
id = 1
name = "x"
  [[workflows.triggers]]
  id = 1
  type = "scheduled"
`
	_, err = config.LoadConfiguration(writeFile(t, "badtype.toml", bad))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestValidate(t *testing.T) {
	cfg := config.Config{
		Settings: config.Settings{FuzzyThreshold: 120, LocalTimezone: "Nowhere/Atlantis"},
		Workflows: []config.WorkflowFile{
			{ID: 1, Name: "a", Triggers: []config.TriggerFile{{ID: 1}, {ID: 1, Type: types.TriggerConsumption}}},
			{ID: 1, Name: " ", Actions: []config.ActionFile{{ID: 3, AssignCustomFieldValues: map[string]string{"x": "1"}}}},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	problems, ok := errors.GetErrorDetails(err)["problems"].([]string)
	require.True(t, ok)
	joined := ""
	for _, p := range problems {
		joined += p + "\n"
	}
	assert.Contains(t, joined, "fuzzy_threshold")
	assert.Contains(t, joined, "local_timezone")
	assert.Contains(t, joined, "workflows[0].triggers[0]: type must be one of")
	assert.Contains(t, joined, "workflows[0].triggers[1]: duplicate trigger id 1")
	assert.Contains(t, joined, "workflows[1]: duplicate workflow id 1")
	assert.Contains(t, joined, "workflows[1]: name is required")
	assert.Contains(t, joined, `custom field value key "x"`)
}

func TestLint(t *testing.T) {
	cfg := config.Config{Workflows: []config.WorkflowFile{{
		ID: 1, Name: "w",
		Triggers: []config.TriggerFile{
			{ID: 1, Type: types.TriggerDocumentAdded, MatchingAlgorithm: types.MatchRegex, Match: "(oops"},
			{ID: 2, Type: types.TriggerDocumentAdded, MatchingAlgorithm: types.MatchLiteral},
		},
		Actions: []config.ActionFile{
			{ID: 1, AssignTitle: "Doc {created_year]"},
			{ID: 2, AssignTitle: "Doc {bogus}"},
			{ID: 3, AssignTitle: "{correspondent} {created_year}"},
		},
	}}}

	require.NoError(t, cfg.Validate())
	warnings := cfg.Lint()
	require.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], "workflow 1 trigger 1")
	assert.Contains(t, warnings[1], "empty pattern")
	assert.Contains(t, warnings[2], "workflow 1 action 1")
	assert.Contains(t, warnings[3], "workflow 1 action 2")
	assert.Contains(t, warnings[3], `unknown placeholder "bogus"`)
}

func TestSettings_Location(t *testing.T) {
	loc, err := config.Settings{}.Location()
	require.NoError(t, err)
	assert.Nil(t, loc)

	loc, err = config.Settings{LocalTimezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestNames_Duplicate(t *testing.T) {
	cfg := config.Config{Catalog: config.CatalogFile{Tags: []config.Entity{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}}}
	_, err := cfg.Names()
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}
