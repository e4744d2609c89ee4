package config

import (
	"strconv"

	"github.com/arthur-debert/docflow/pkg/catalog"
	"github.com/arthur-debert/docflow/pkg/types"
)

// WorkflowSet converts the decoded workflows to engine types, keeping file
// order. Call Validate first.
func (c *Config) WorkflowSet() []types.Workflow {
	out := make([]types.Workflow, 0, len(c.Workflows))
	for _, wf := range c.Workflows {
		out = append(out, wf.toWorkflow())
	}
	return out
}

func (wf WorkflowFile) toWorkflow() types.Workflow {
	w := types.Workflow{
		ID:      wf.ID,
		Name:    wf.Name,
		Enabled: wf.Enabled == nil || *wf.Enabled,
		Order:   wf.Order,
	}
	for _, t := range wf.Triggers {
		w.Triggers = append(w.Triggers, t.toTrigger())
	}
	for _, a := range wf.Actions {
		w.Actions = append(w.Actions, a.toAction())
	}
	return w
}

func (t TriggerFile) toTrigger() types.WorkflowTrigger {
	return types.WorkflowTrigger{
		ID:                     t.ID,
		Type:                   t.Type,
		Sources:                append([]types.DocumentSource(nil), t.Sources...),
		FilterMailRule:         t.FilterMailRule,
		FilterFilename:         t.FilterFilename,
		FilterPath:             t.FilterPath,
		FilterHasTags:          types.NewIDSet(t.FilterHasTags...),
		FilterHasDocumentType:  t.FilterHasDocumentType,
		FilterHasCorrespondent: t.FilterHasCorrespondent,
		MatchingAlgorithm:      t.MatchingAlgorithm,
		Match:                  t.Match,
		IsInsensitive:          t.IsInsensitive,
	}
}

func (a ActionFile) toAction() types.WorkflowAction {
	action := types.WorkflowAction{
		ID:                  a.ID,
		Type:                a.Type,
		AssignTitle:         a.AssignTitle,
		AssignCorrespondent: a.AssignCorrespondent,
		AssignDocumentType:  a.AssignDocumentType,
		AssignStoragePath:   a.AssignStoragePath,
		AssignOwner:         a.AssignOwner,

		AssignTags:         types.NewIDSet(a.AssignTags...),
		AssignViewUsers:    types.NewIDSet(a.AssignViewUsers...),
		AssignViewGroups:   types.NewIDSet(a.AssignViewGroups...),
		AssignChangeUsers:  types.NewIDSet(a.AssignChangeUsers...),
		AssignChangeGroups: types.NewIDSet(a.AssignChangeGroups...),
		AssignCustomFields: types.NewIDSet(a.AssignCustomFields...),

		RemoveTags:              types.NewIDSet(a.RemoveTags...),
		RemoveAllTags:           a.RemoveAllTags,
		RemoveCorrespondents:    types.NewIDSet(a.RemoveCorrespondents...),
		RemoveAllCorrespondents: a.RemoveAllCorrespondents,
		RemoveDocumentTypes:     types.NewIDSet(a.RemoveDocumentTypes...),
		RemoveAllDocumentTypes:  a.RemoveAllDocumentTypes,
		RemoveStoragePaths:      types.NewIDSet(a.RemoveStoragePaths...),
		RemoveAllStoragePaths:   a.RemoveAllStoragePaths,
		RemoveOwners:            types.NewIDSet(a.RemoveOwners...),
		RemoveAllOwners:         a.RemoveAllOwners,
		RemoveViewUsers:         types.NewIDSet(a.RemoveViewUsers...),
		RemoveViewGroups:        types.NewIDSet(a.RemoveViewGroups...),
		RemoveChangeUsers:       types.NewIDSet(a.RemoveChangeUsers...),
		RemoveChangeGroups:      types.NewIDSet(a.RemoveChangeGroups...),
		RemoveAllPermissions:    a.RemoveAllPermissions,
		RemoveCustomFields:      types.NewIDSet(a.RemoveCustomFields...),
		RemoveAllCustomFields:   a.RemoveAllCustomFields,
	}

	if len(a.AssignCustomFieldValues) > 0 {
		action.AssignCustomFieldValues = make(map[types.ID]string, len(a.AssignCustomFieldValues))
		for key, value := range a.AssignCustomFieldValues {
			id, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				continue
			}
			action.AssignCustomFieldValues[types.ID(id)] = value
		}
	}
	return action
}

// Names builds the entity catalog. Duplicate entries are reported.
func (c *Config) Names() (*catalog.Catalog, error) {
	names := catalog.New()
	groups := []struct {
		kind     types.EntityKind
		entities []Entity
	}{
		{types.KindCorrespondent, c.Catalog.Correspondents},
		{types.KindDocumentType, c.Catalog.DocumentTypes},
		{types.KindTag, c.Catalog.Tags},
		{types.KindStoragePath, c.Catalog.StoragePaths},
		{types.KindUser, c.Catalog.Users},
		{types.KindGroup, c.Catalog.Groups},
		{types.KindCustomField, c.Catalog.CustomFields},
		{types.KindMailRule, c.Catalog.MailRules},
	}
	for _, g := range groups {
		for _, e := range g.entities {
			if err := names.Register(g.kind, e.ID, e.Name); err != nil {
				return nil, err
			}
		}
	}
	return names, nil
}
