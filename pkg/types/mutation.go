package types

// Change is a single-valued field result. Set false means unchanged; Set
// true with the zero Value means the field was cleared.
type Change[T any] struct {
	Set   bool `json:"set"`
	Value T    `json:"value"`
}

// Assign returns a Change that sets v.
func Assign[T any](v T) Change[T] {
	return Change[T]{Set: true, Value: v}
}

// Or returns the changed value, or fallback when unchanged.
func (c Change[T]) Or(fallback T) T {
	if c.Set {
		return c.Value
	}
	return fallback
}

// MutationSet is the net effect of every matched workflow on one document.
// Multi-valued fields hold the complete resulting sets.
type MutationSet struct {
	Title         Change[string] `json:"title"`
	Correspondent Change[ID]     `json:"correspondent"`
	DocumentType  Change[ID]     `json:"document_type"`
	StoragePath   Change[ID]     `json:"storage_path"`
	Owner         Change[ID]     `json:"owner"`

	Tags         IDSet              `json:"tags"`
	Permissions  Permissions        `json:"permissions"`
	CustomFields []CustomFieldValue `json:"custom_fields"`

	// Workflows lists the applied workflows in application order.
	Workflows []ID         `json:"workflows"`
	Errors    []FieldError `json:"errors"`
}

// HasErrors reports whether any recoverable field error was recorded.
func (m *MutationSet) HasErrors() bool {
	return len(m.Errors) > 0
}

// FieldError is a recoverable problem with one field. The field keeps its
// previous value.
type FieldError struct {
	Field    string `json:"field"`
	Workflow ID     `json:"workflow"`
	Action   ID     `json:"action"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// Outcome is the result of considering one workflow.
type Outcome int

const (
	OutcomeMatched Outcome = iota + 1
	OutcomeNotMatched
	OutcomeNoTriggerType
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeNotMatched:
		return "not matched"
	case OutcomeNoTriggerType:
		return "no applicable trigger type"
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Decision is the two-line trace entry for one considered workflow.
type Decision struct {
	Workflow ID      `json:"workflow"`
	Outcome  Outcome `json:"outcome"`
	// Trigger is the matching trigger, or the last evaluated one.
	Trigger ID     `json:"trigger"`
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

// Lines returns the summary line followed by the detail line.
func (d Decision) Lines() []string {
	return []string{d.Summary, d.Detail}
}
