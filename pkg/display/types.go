// Package display turns engine results into report structures that the
// renderers in pkg/ui can print without knowing about the engine.
package display

import (
	"github.com/arthur-debert/docflow/pkg/types"
)

// Report is the complete result of running a workflow set against one
// document, formatted for display.
type Report struct {
	// Trigger is the trigger type the run was evaluated for
	Trigger string `json:"trigger"`

	// Document is the document id, or 0 for a consumption run
	Document types.ID `json:"document"`

	// Decisions holds one entry per considered workflow, in evaluation order
	Decisions []DecisionLine `json:"decisions"`

	// Applied names the matched workflows in application order
	Applied []string `json:"applied"`

	// Changes lists the resulting field values in a fixed field order
	Changes []FieldChange `json:"changes"`

	// Errors are recoverable problems recorded while applying actions
	Errors []types.FieldError `json:"errors,omitempty"`

	// Mutation is the raw mutation set
	Mutation *types.MutationSet `json:"mutation"`
}

// DecisionLine is one workflow decision.
type DecisionLine struct {
	Workflow types.ID `json:"workflow"`
	Outcome  string   `json:"outcome"`
	Matched  bool     `json:"matched"`
	Summary  string   `json:"summary"`
	Detail   string   `json:"detail"`
}

// FieldChange is one field of the resulting document.
type FieldChange struct {
	Field string `json:"field"`
	Value string `json:"value"`

	// Changed is false when the field kept the value the document had
	Changed bool `json:"changed"`

	// Cleared marks a single-valued field removed by an action
	Cleared bool `json:"cleared,omitempty"`
}

// HasMatches reports whether any workflow matched.
func (r *Report) HasMatches() bool {
	return len(r.Applied) > 0
}
