package actions

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/logging"
	"github.com/arthur-debert/docflow/pkg/titles"
	"github.com/arthur-debert/docflow/pkg/types"
)

// FieldError.Field values.
const (
	FieldTitle  = "title"
	FieldAction = "action"
)

// Options carries the read-only collaborators of Apply.
type Options struct {
	Names       types.Names
	Permissions types.PermissionSource
	// Location is the time zone title dates are rendered in. Nil keeps the
	// timestamps' own zone.
	Location *time.Location
}

type titleSource struct {
	template string
	workflow types.ID
	action   types.ID
}

type applier struct {
	opts   Options
	doc    types.Document
	out    *types.MutationSet
	title  *titleSource
	logger zerolog.Logger
}

// Apply computes the net effect of matched on doc. Matched workflows must
// already be in evaluation order. Apply never fails; recoverable problems
// are recorded in the returned set's Errors.
func Apply(matched []types.Workflow, tt types.TriggerType, doc types.Document, opts Options) *types.MutationSet {
	a := &applier{
		opts:   opts,
		doc:    doc,
		out:    baseMutation(tt, doc, opts),
		logger: logging.GetLogger("actions.apply"),
	}

	var removals []func()
	for _, wf := range matched {
		a.out.Workflows = append(a.out.Workflows, wf.ID)
		for _, action := range wf.Actions {
			switch action.Type {
			case types.ActionAssignment:
				a.assign(wf, action)
			case types.ActionRemoval:
				removals = append(removals, func() { a.remove(wf, action) })
			default:
				a.unknownAction(wf.ID, action)
			}
		}
	}

	for _, remove := range removals {
		remove()
	}

	a.renderTitle()

	return a.out
}

func baseMutation(tt types.TriggerType, doc types.Document, opts Options) *types.MutationSet {
	out := &types.MutationSet{
		Tags:         doc.Tags.Clone(),
		CustomFields: make([]types.CustomFieldValue, len(doc.CustomFields)),
		Workflows:    []types.ID{},
		Errors:       []types.FieldError{},
	}
	copy(out.CustomFields, doc.CustomFields)

	if tt != types.TriggerConsumption && opts.Permissions != nil {
		out.Permissions = opts.Permissions.Permissions(doc.ID).Clone()
	}
	return out
}

func (a *applier) assign(wf types.Workflow, action types.WorkflowAction) {
	a.logger.Debug().
		Int64("workflow", int64(wf.ID)).
		Int64("action", int64(action.ID)).
		Msg("applying assignment")

	if action.AssignTitle != "" {
		a.assignTitle(wf, action)
	}

	assignID(&a.out.Correspondent, action.AssignCorrespondent)
	assignID(&a.out.DocumentType, action.AssignDocumentType)
	assignID(&a.out.StoragePath, action.AssignStoragePath)
	assignID(&a.out.Owner, action.AssignOwner)

	a.out.Tags.Union(action.AssignTags)

	p := &a.out.Permissions
	p.ViewUsers.Union(action.AssignViewUsers)
	p.ViewGroups.Union(action.AssignViewGroups)
	p.ChangeUsers.Union(action.AssignChangeUsers)
	p.ChangeGroups.Union(action.AssignChangeGroups)

	for _, field := range action.AssignCustomFields.Items() {
		if hasField(a.out.CustomFields, field) {
			continue
		}
		cf := types.CustomFieldValue{Field: field}
		if v, ok := action.CustomFieldDefault(field); ok {
			value := v
			cf.Value = &value
		}
		a.out.CustomFields = append(a.out.CustomFields, cf)
	}
}

// assignTitle accepts the template only if it renders against the current
// document. A rejected template leaves any earlier accepted one in place.
func (a *applier) assignTitle(wf types.Workflow, action types.WorkflowAction) {
	if _, err := titles.Render(action.AssignTitle, a.titleVars()); err != nil {
		a.titleError(wf.ID, action.ID, action.AssignTitle, err)
		return
	}
	a.title = &titleSource{template: action.AssignTitle, workflow: wf.ID, action: action.ID}
}

func (a *applier) remove(wf types.Workflow, action types.WorkflowAction) {
	a.logger.Debug().
		Int64("workflow", int64(wf.ID)).
		Int64("action", int64(action.ID)).
		Msg("applying removal")

	if action.RemoveAllTags {
		a.out.Tags.Clear()
	} else {
		a.out.Tags.Subtract(action.RemoveTags)
	}

	removeID(&a.out.Correspondent, a.doc.Correspondent, action.RemoveAllCorrespondents, action.RemoveCorrespondents)
	removeID(&a.out.DocumentType, a.doc.DocumentType, action.RemoveAllDocumentTypes, action.RemoveDocumentTypes)
	removeID(&a.out.StoragePath, a.doc.StoragePath, action.RemoveAllStoragePaths, action.RemoveStoragePaths)
	removeID(&a.out.Owner, a.doc.Owner, action.RemoveAllOwners, action.RemoveOwners)

	p := &a.out.Permissions
	if action.RemoveAllPermissions {
		p.Clear()
	} else {
		p.ViewUsers.Subtract(action.RemoveViewUsers)
		p.ViewGroups.Subtract(action.RemoveViewGroups)
		p.ChangeUsers.Subtract(action.RemoveChangeUsers)
		p.ChangeGroups.Subtract(action.RemoveChangeGroups)
	}

	switch {
	case action.RemoveAllCustomFields:
		a.out.CustomFields = []types.CustomFieldValue{}
	case !action.RemoveCustomFields.IsEmpty():
		kept := make([]types.CustomFieldValue, 0, len(a.out.CustomFields))
		for _, cf := range a.out.CustomFields {
			if !action.RemoveCustomFields.Contains(cf.Field) {
				kept = append(kept, cf)
			}
		}
		a.out.CustomFields = kept
	}
}

func (a *applier) renderTitle() {
	if a.title == nil {
		return
	}
	rendered, err := titles.Render(a.title.template, a.titleVars())
	if err != nil {
		a.titleError(a.title.workflow, a.title.action, a.title.template, err)
		return
	}
	a.out.Title = types.Assign(rendered)
}

func (a *applier) titleVars() titles.Vars {
	names := a.opts.Names
	vars := titles.Vars{
		Correspondent:    types.DisplayName(names, types.KindCorrespondent, a.out.Correspondent.Or(a.doc.Correspondent)),
		DocumentType:     types.DisplayName(names, types.KindDocumentType, a.out.DocumentType.Or(a.doc.DocumentType)),
		OwnerUsername:    types.DisplayName(names, types.KindUser, a.out.Owner.Or(a.doc.Owner)),
		OriginalFilename: a.doc.FilenameStem(),
		Added:            a.doc.Added,
		Created:          a.doc.Created,
	}
	if loc := a.opts.Location; loc != nil {
		vars.Added = vars.Added.In(loc)
		if !vars.Created.IsZero() {
			vars.Created = vars.Created.In(loc)
		}
	}
	return vars
}

func (a *applier) titleError(workflow, action types.ID, tpl string, err error) {
	msg := fmt.Sprintf("Error occurred parsing title assignment '%s', falling back to original", tpl)
	a.logger.Error().
		Err(err).
		Int64("workflow", int64(workflow)).
		Int64("action", int64(action)).
		Msg(msg)

	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		code = errors.ErrTemplateInvalid
	}
	a.out.Errors = append(a.out.Errors, types.FieldError{
		Field:    FieldTitle,
		Workflow: workflow,
		Action:   action,
		Code:     string(code),
		Message:  msg,
	})
}

func assignID(c *types.Change[types.ID], id types.ID) {
	if id != types.NoID {
		*c = types.Assign(id)
	}
}

// removeID clears c when the remove-all flag is set or the current value is
// listed. Fields that are already unset stay unchanged.
func removeID(c *types.Change[types.ID], base types.ID, all bool, listed types.IDSet) {
	current := c.Or(base)
	if current == types.NoID {
		return
	}
	if all || listed.Contains(current) {
		*c = types.Assign(types.NoID)
	}
}

func hasField(fields []types.CustomFieldValue, field types.ID) bool {
	for _, cf := range fields {
		if cf.Field == field {
			return true
		}
	}
	return false
}

// unknownAction records an action whose type is outside the closed set. The
// action is not applied.
func (a *applier) unknownAction(workflow types.ID, action types.WorkflowAction) {
	msg := fmt.Sprintf("Unknown action type %s, skipping WorkflowAction %d", action.Type, action.ID)
	a.logger.Error().
		Int64("workflow", int64(workflow)).
		Int64("action", int64(action.ID)).
		Int("type", int(action.Type)).
		Msg(msg)

	a.out.Errors = append(a.out.Errors, types.FieldError{
		Field:    FieldAction,
		Workflow: workflow,
		Action:   action.ID,
		Code:     string(errors.ErrInvalidInput),
		Message:  msg,
	})
}
