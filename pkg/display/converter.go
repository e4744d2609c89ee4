package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/docflow/pkg/types"
)

// Converter transforms engine results into a Report.
type Converter struct {
	names types.Names
}

// NewConverter creates a converter resolving ids through names. A nil
// names renders ids as "#<id>".
func NewConverter(names types.Names) *Converter {
	return &Converter{names: names}
}

// Convert builds the report for one run. workflows is used to name the
// applied workflows; doc is the document as it was before the run.
func (c *Converter) Convert(tt types.TriggerType, doc types.Document, workflows []types.Workflow, ms *types.MutationSet, decisions []types.Decision) Report {
	report := Report{
		Trigger:   tt.String(),
		Document:  doc.ID,
		Decisions: make([]DecisionLine, 0, len(decisions)),
		Applied:   []string{},
		Changes:   []FieldChange{},
		Mutation:  ms,
	}

	for _, d := range decisions {
		report.Decisions = append(report.Decisions, DecisionLine{
			Workflow: d.Workflow,
			Outcome:  d.Outcome.String(),
			Matched:  d.Outcome == types.OutcomeMatched,
			Summary:  d.Summary,
			Detail:   d.Detail,
		})
	}

	if ms == nil {
		return report
	}

	byID := make(map[types.ID]string, len(workflows))
	for _, wf := range workflows {
		byID[wf.ID] = wf.Name
	}
	for _, id := range ms.Workflows {
		name, ok := byID[id]
		if !ok {
			name = fmt.Sprintf("#%d", id)
		}
		report.Applied = append(report.Applied, name)
	}

	report.Errors = ms.Errors
	report.Changes = c.changes(doc, ms)
	return report
}

func (c *Converter) changes(doc types.Document, ms *types.MutationSet) []FieldChange {
	var out []FieldChange

	title := FieldChange{Field: "title", Value: ms.Title.Or(doc.Title), Changed: ms.Title.Set && ms.Title.Value != doc.Title}
	out = append(out, title)

	single := []struct {
		field   string
		kind    types.EntityKind
		change  types.Change[types.ID]
		current types.ID
	}{
		{"correspondent", types.KindCorrespondent, ms.Correspondent, doc.Correspondent},
		{"document_type", types.KindDocumentType, ms.DocumentType, doc.DocumentType},
		{"storage_path", types.KindStoragePath, ms.StoragePath, doc.StoragePath},
		{"owner", types.KindUser, ms.Owner, doc.Owner},
	}
	for _, s := range single {
		value := s.change.Or(s.current)
		out = append(out, FieldChange{
			Field:   s.field,
			Value:   types.DisplayName(c.names, s.kind, value),
			Changed: s.change.Set && value != s.current,
			Cleared: s.change.Set && value == types.NoID && s.current != types.NoID,
		})
	}

	out = append(out, FieldChange{
		Field:   "tags",
		Value:   c.nameList(types.KindTag, ms.Tags),
		Changed: !sameSet(ms.Tags, doc.Tags),
	})

	perms := []struct {
		field string
		kind  types.EntityKind
		set   types.IDSet
	}{
		{"view_users", types.KindUser, ms.Permissions.ViewUsers},
		{"view_groups", types.KindGroup, ms.Permissions.ViewGroups},
		{"change_users", types.KindUser, ms.Permissions.ChangeUsers},
		{"change_groups", types.KindGroup, ms.Permissions.ChangeGroups},
	}
	for _, p := range perms {
		if p.set.IsEmpty() {
			continue
		}
		out = append(out, FieldChange{Field: p.field, Value: c.nameList(p.kind, p.set), Changed: true})
	}

	existing := make(map[types.ID]bool, len(doc.CustomFields))
	for _, cf := range doc.CustomFields {
		existing[cf.Field] = true
	}
	for _, cf := range ms.CustomFields {
		value := "null"
		if cf.Value != nil {
			value = fmt.Sprintf("%q", *cf.Value)
		}
		out = append(out, FieldChange{
			Field:   "custom_field " + types.DisplayName(c.names, types.KindCustomField, cf.Field),
			Value:   value,
			Changed: !existing[cf.Field],
		})
	}

	return out
}

func (c *Converter) nameList(kind types.EntityKind, set types.IDSet) string {
	if set.IsEmpty() {
		return "None"
	}
	names := make([]string, 0, set.Len())
	for _, id := range set.Items() {
		names = append(names, types.DisplayName(c.names, kind, id))
	}
	return strings.Join(names, ", ")
}

func sameSet(a, b types.IDSet) bool {
	return a.Len() == b.Len() && a.ContainsAll(b)
}
