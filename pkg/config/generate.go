package config

import (
	"bytes"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/types"
)

const exampleHeader = `# docflow workflow file
#
# Workflows are evaluated in ascending order (ties by id). For each
# workflow the first trigger of the requested type that matches selects
# it; its actions are then applied, assignments before removals.
#
# Trigger types:       consumption, document_added, document_updated
# Sources:             consume_folder, api_upload, mail_fetch
# Matching algorithms: none, any_word, all_words, literal, regex, fuzzy
# Action types:        assignment, removal

`

// ExampleConfig returns a small but complete workflow set.
func ExampleConfig() Config {
	enabled := true
	return Config{
		Settings: Settings{OutputFormat: "auto", FuzzyThreshold: 90},
		Catalog: CatalogFile{
			Correspondents: []Entity{{ID: 1, Name: "Acme Power"}},
			DocumentTypes:  []Entity{{ID: 1, Name: "Invoice"}},
			Tags:           []Entity{{ID: 1, Name: "inbox"}, {ID: 2, Name: "utilities"}, {ID: 3, Name: "unsorted"}},
			StoragePaths:   []Entity{{ID: 1, Name: "bills"}},
			Users:          []Entity{{ID: 1, Name: "alice"}},
			Groups:         []Entity{{ID: 1, Name: "household"}},
			CustomFields:   []Entity{{ID: 1, Name: "amount"}},
		},
		Workflows: []WorkflowFile{
			{
				ID:      1,
				Name:    "Tag incoming scans",
				Enabled: &enabled,
				Order:   0,
				Triggers: []TriggerFile{{
					ID:             1,
					Type:           types.TriggerConsumption,
					Sources:        []types.DocumentSource{types.SourceConsumeFolder, types.SourceMailFetch},
					FilterFilename: "*.pdf",
				}},
				Actions: []ActionFile{{
					ID:               1,
					Type:             types.ActionAssignment,
					AssignTags:       []types.ID{1, 3},
					AssignOwner:      1,
					AssignViewGroups: []types.ID{1},
				}},
			},
			{
				ID:    2,
				Name:  "Power bills",
				Order: 10,
				Triggers: []TriggerFile{{
					ID:                2,
					Type:              types.TriggerDocumentAdded,
					MatchingAlgorithm: types.MatchAllWords,
					Match:             `"acme power" invoice`,
					IsInsensitive:     true,
				}},
				Actions: []ActionFile{
					{
						ID:                      2,
						Type:                    types.ActionAssignment,
						AssignTitle:             "{correspondent} {created_year}-{created_month}",
						AssignCorrespondent:     1,
						AssignDocumentType:      1,
						AssignStoragePath:       1,
						AssignTags:              []types.ID{2},
						AssignCustomFields:      []types.ID{1},
						AssignCustomFieldValues: map[string]string{"1": "0.00"},
					},
					{
						ID:         3,
						Type:       types.ActionRemoval,
						RemoveTags: []types.ID{3},
					},
				},
			},
		},
	}
}

// GenerateExample renders ExampleConfig as a commented TOML file.
func GenerateExample() (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(ExampleConfig()); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode example configuration")
	}
	return exampleHeader + buf.String(), nil
}

// GenerateDefaults returns the embedded defaults with every value
// commented out, for use as a starting settings block.
func GenerateDefaults() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [settings]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
