// pkg/types/workflow_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test workflow, document and decision helpers

package types_test

import (
	"testing"

	"github.com/arthur-debert/docflow/pkg/types"
	"github.com/stretchr/testify/assert"
)

type staticNames map[types.ID]string

func (n staticNames) Name(_ types.EntityKind, id types.ID) (string, bool) {
	name, ok := n[id]
	return name, ok
}

func TestDisplayStrings(t *testing.T) {
	assert.Equal(t, "Workflow: Invoices", types.Workflow{Name: "Invoices"}.String())
	assert.Equal(t, "WorkflowTrigger 4", types.WorkflowTrigger{ID: 4}.String())
	assert.Equal(t, "WorkflowAction 7", types.WorkflowAction{ID: 7}.String())
}

func TestWorkflow_TriggersOfType(t *testing.T) {
	w := types.Workflow{Triggers: []types.WorkflowTrigger{
		{ID: 1, Type: types.TriggerConsumption},
		{ID: 2, Type: types.TriggerDocumentAdded},
		{ID: 3, Type: types.TriggerConsumption},
	}}

	got := w.TriggersOfType(types.TriggerConsumption)
	assert.Len(t, got, 2)
	assert.Equal(t, types.ID(1), got[0].ID)
	assert.Equal(t, types.ID(3), got[1].ID)
	assert.Empty(t, w.TriggersOfType(types.TriggerDocumentUpdated))
}

func TestDisplayName(t *testing.T) {
	names := staticNames{1: "Acme"}

	assert.Equal(t, "Acme", types.DisplayName(names, types.KindCorrespondent, 1))
	assert.Equal(t, "#2", types.DisplayName(names, types.KindCorrespondent, 2))
	assert.Equal(t, "None", types.DisplayName(names, types.KindCorrespondent, types.NoID))
	assert.Equal(t, "#3", types.DisplayName(nil, types.KindTag, 3))
}

func TestDocument_FilenameStem(t *testing.T) {
	assert.Equal(t, "simple", types.Document{OriginalFilename: "simple.pdf"}.FilenameStem())
	assert.Equal(t, "archive.tar", types.Document{OriginalFilename: "/in/archive.tar.gz"}.FilenameStem())
	assert.Equal(t, "", types.Document{}.FilenameStem())
}

func TestIntake_Filename(t *testing.T) {
	in := types.Intake{Path: "/scratch/simple.pdf"}
	assert.Equal(t, "simple.pdf", in.Filename())
}

func TestChange(t *testing.T) {
	var unchanged types.Change[types.ID]
	assert.Equal(t, types.ID(5), unchanged.Or(5))

	cleared := types.Assign(types.NoID)
	assert.True(t, cleared.Set)
	assert.Equal(t, types.NoID, cleared.Or(5))
}

func TestPermissionSourceFunc(t *testing.T) {
	src := types.PermissionSourceFunc(func(doc types.ID) types.Permissions {
		return types.Permissions{ViewUsers: types.NewIDSet(doc)}
	})

	p := src.Permissions(8)
	assert.Equal(t, []types.ID{8}, p.ViewUsers.Items())
}

func TestDecision_Lines(t *testing.T) {
	d := types.Decision{Summary: "Document did not match Workflow: w", Detail: "No matching triggers with type CONSUMPTION found"}
	assert.Equal(t, []string{d.Summary, d.Detail}, d.Lines())
	assert.Equal(t, "no applicable trigger type", types.OutcomeNoTriggerType.String())
}
