package testutil

import (
	"github.com/arthur-debert/docflow/pkg/types"
)

// AllSources lists every intake source
var AllSources = []types.DocumentSource{
	types.SourceConsumeFolder,
	types.SourceAPIUpload,
	types.SourceMailFetch,
}

// WorkflowBuilder builds a workflow step by step. Workflows start enabled
// with order 0.
type WorkflowBuilder struct {
	wf types.Workflow
}

// NewWorkflow starts a workflow with the given id and name
func NewWorkflow(id types.ID, name string) *WorkflowBuilder {
	return &WorkflowBuilder{wf: types.Workflow{ID: id, Name: name, Enabled: true}}
}

// Order sets the evaluation order
func (b *WorkflowBuilder) Order(order int) *WorkflowBuilder {
	b.wf.Order = order
	return b
}

// Disabled marks the workflow disabled
func (b *WorkflowBuilder) Disabled() *WorkflowBuilder {
	b.wf.Enabled = false
	return b
}

// Trigger appends a trigger
func (b *WorkflowBuilder) Trigger(t types.WorkflowTrigger) *WorkflowBuilder {
	b.wf.Triggers = append(b.wf.Triggers, t)
	return b
}

// OnConsumption appends a consumption trigger accepting every source, with
// optional filename and path globs
func (b *WorkflowBuilder) OnConsumption(id types.ID, filename, path string) *WorkflowBuilder {
	return b.Trigger(types.WorkflowTrigger{
		ID:             id,
		Type:           types.TriggerConsumption,
		Sources:        append([]types.DocumentSource(nil), AllSources...),
		FilterFilename: filename,
		FilterPath:     path,
	})
}

// OnContent appends a document trigger of type tt matching content
func (b *WorkflowBuilder) OnContent(id types.ID, tt types.TriggerType, alg types.MatchingAlgorithm, pattern string) *WorkflowBuilder {
	return b.Trigger(types.WorkflowTrigger{
		ID:                id,
		Type:              tt,
		MatchingAlgorithm: alg,
		Match:             pattern,
	})
}

// Action appends an action
func (b *WorkflowBuilder) Action(a types.WorkflowAction) *WorkflowBuilder {
	b.wf.Actions = append(b.wf.Actions, a)
	return b
}

// AssignTags appends an assignment action adding tags
func (b *WorkflowBuilder) AssignTags(id types.ID, tags ...types.ID) *WorkflowBuilder {
	return b.Action(types.WorkflowAction{ID: id, Type: types.ActionAssignment, AssignTags: types.NewIDSet(tags...)})
}

// RemoveTags appends a removal action removing tags
func (b *WorkflowBuilder) RemoveTags(id types.ID, tags ...types.ID) *WorkflowBuilder {
	return b.Action(types.WorkflowAction{ID: id, Type: types.ActionRemoval, RemoveTags: types.NewIDSet(tags...)})
}

// Build returns the workflow
func (b *WorkflowBuilder) Build() types.Workflow {
	return b.wf
}

// Workflows builds each builder in turn
func Workflows(builders ...*WorkflowBuilder) []types.Workflow {
	out := make([]types.Workflow, 0, len(builders))
	for _, b := range builders {
		out = append(out, b.Build())
	}
	return out
}

// NewDocument returns a persisted document snapshot with content and tags
func NewDocument(id types.ID, content string, tags ...types.ID) types.MatchContext {
	return types.MatchContext{Document: types.Document{
		ID:      id,
		Content: content,
		Tags:    types.NewIDSet(tags...),
	}}
}

// NewIntakeContext returns a consumption context for a file at path
func NewIntakeContext(source types.DocumentSource, path string) types.MatchContext {
	return types.MatchContext{Intake: &types.Intake{Source: source, Path: path}}
}
