// pkg/testutil/builders_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test the workflow builders and environment helpers

package testutil_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/docflow/pkg/testutil"
	"github.com/arthur-debert/docflow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowBuilder(t *testing.T) {
	wf := testutil.NewWorkflow(3, "Bills").
		Order(7).
		OnConsumption(1, "*.pdf", "").
		OnContent(2, types.TriggerDocumentAdded, types.MatchLiteral, "invoice").
		AssignTags(1, 4, 5).
		RemoveTags(2, 9).
		Build()

	assert.True(t, wf.Enabled)
	assert.Equal(t, 7, wf.Order)
	require.Len(t, wf.Triggers, 2)
	assert.Equal(t, testutil.AllSources, wf.Triggers[0].Sources)
	assert.Equal(t, "*.pdf", wf.Triggers[0].FilterFilename)
	assert.Equal(t, types.MatchLiteral, wf.Triggers[1].MatchingAlgorithm)
	require.Len(t, wf.Actions, 2)
	assert.Equal(t, []types.ID{4, 5}, wf.Actions[0].AssignTags.Items())
	assert.Equal(t, types.ActionRemoval, wf.Actions[1].Type)

	assert.False(t, testutil.NewWorkflow(1, "off").Disabled().Build().Enabled)
	assert.Len(t, testutil.Workflows(testutil.NewWorkflow(1, "a"), testutil.NewWorkflow(2, "b")), 2)
}

func TestContexts(t *testing.T) {
	doc := testutil.NewDocument(5, "hello", 1, 2)
	assert.Equal(t, types.ID(5), doc.Document.ID)
	assert.Nil(t, doc.Intake)
	assert.Equal(t, 2, doc.Document.Tags.Len())

	in := testutil.NewIntakeContext(types.SourceMailFetch, "/in/a.pdf")
	require.NotNil(t, in.Intake)
	assert.Equal(t, "a.pdf", in.Intake.Filename())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("DOCFLOW_FUZZY_THRESHOLD", "10")
	env := testutil.NewTestEnvironment(t)

	_, set := os.LookupEnv("DOCFLOW_FUZZY_THRESHOLD")
	assert.False(t, set)
	assert.Equal(t, env.StateDir, os.Getenv("XDG_STATE_HOME"))

	path := env.WriteFile("nested/w.toml", "x = 1")
	assert.True(t, env.FileExists("nested/w.toml"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x = 1", string(data))
}
