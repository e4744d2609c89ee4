package types

import "fmt"

// Workflow bundles triggers (when to fire) with actions (what to change).
// Triggers and Actions keep their declared order.
type Workflow struct {
	ID       ID
	Name     string
	Enabled  bool
	Order    int
	Triggers []WorkflowTrigger
	Actions  []WorkflowAction
}

func (w Workflow) String() string {
	return "Workflow: " + w.Name
}

// TriggersOfType returns the workflow's triggers of type tt in declared order.
func (w Workflow) TriggersOfType(tt TriggerType) []WorkflowTrigger {
	var out []WorkflowTrigger
	for _, t := range w.Triggers {
		if t.Type == tt {
			out = append(out, t)
		}
	}
	return out
}

// WorkflowTrigger is a predicate over a MatchContext. Every set criterion
// must hold; unset criteria are vacuously satisfied.
type WorkflowTrigger struct {
	ID   ID
	Type TriggerType

	// Consumption only.
	Sources        []DocumentSource
	FilterMailRule ID

	FilterFilename string
	FilterPath     string

	// Document triggers only.
	FilterHasTags          IDSet
	FilterHasDocumentType  ID
	FilterHasCorrespondent ID

	MatchingAlgorithm MatchingAlgorithm
	Match             string
	IsInsensitive     bool
}

func (t WorkflowTrigger) String() string {
	return fmt.Sprintf("WorkflowTrigger %d", t.ID)
}

// HasSource reports whether src is one of the trigger's allowed sources.
func (t WorkflowTrigger) HasSource(src DocumentSource) bool {
	for _, s := range t.Sources {
		if s == src {
			return true
		}
	}
	return false
}

// WorkflowAction is either an assignment or a removal. Assignment fields
// are ignored on removal actions and vice versa.
type WorkflowAction struct {
	ID   ID
	Type ActionType

	AssignTitle         string
	AssignCorrespondent ID
	AssignDocumentType  ID
	AssignStoragePath   ID
	AssignOwner         ID

	AssignTags         IDSet
	AssignViewUsers    IDSet
	AssignViewGroups   IDSet
	AssignChangeUsers  IDSet
	AssignChangeGroups IDSet

	AssignCustomFields IDSet
	// AssignCustomFieldValues holds optional default values keyed by field.
	AssignCustomFieldValues map[ID]string

	RemoveTags    IDSet
	RemoveAllTags bool

	RemoveCorrespondents    IDSet
	RemoveAllCorrespondents bool

	RemoveDocumentTypes    IDSet
	RemoveAllDocumentTypes bool

	RemoveStoragePaths    IDSet
	RemoveAllStoragePaths bool

	RemoveOwners    IDSet
	RemoveAllOwners bool

	RemoveViewUsers      IDSet
	RemoveViewGroups     IDSet
	RemoveChangeUsers    IDSet
	RemoveChangeGroups   IDSet
	RemoveAllPermissions bool

	RemoveCustomFields    IDSet
	RemoveAllCustomFields bool
}

func (a WorkflowAction) String() string {
	return fmt.Sprintf("WorkflowAction %d", a.ID)
}

// CustomFieldDefault returns the default value configured for field, if any.
func (a WorkflowAction) CustomFieldDefault(field ID) (string, bool) {
	v, ok := a.AssignCustomFieldValues[field]
	return v, ok
}
