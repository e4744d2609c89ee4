package types

import (
	"path/filepath"
	"strings"
	"time"
)

// Document is a snapshot of a document's current metadata. For consumption
// the snapshot describes the document about to be created and is usually
// empty apart from OriginalFilename.
type Document struct {
	ID            ID
	Title         string
	Correspondent ID
	DocumentType  ID
	StoragePath   ID
	Owner         ID
	Tags          IDSet
	Content       string

	OriginalFilename string
	// SourcePath is the path the document was consumed from, if known.
	SourcePath string

	// Created is the zero time when the creation date is unknown.
	Created time.Time
	Added   time.Time

	CustomFields []CustomFieldValue
}

// CustomFieldValue is one custom field instance on a document. A nil Value
// means the field is attached without a value.
type CustomFieldValue struct {
	Field ID      `json:"field"`
	Value *string `json:"value"`
}

// HasCustomField reports whether the document already carries field.
func (d Document) HasCustomField(field ID) bool {
	for _, cf := range d.CustomFields {
		if cf.Field == field {
			return true
		}
	}
	return false
}

// FilenameStem is the original filename without directory or extension.
func (d Document) FilenameStem() string {
	base := filepath.Base(d.OriginalFilename)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Permissions are the view and change grants on a document.
type Permissions struct {
	ViewUsers    IDSet `json:"view_users"`
	ViewGroups   IDSet `json:"view_groups"`
	ChangeUsers  IDSet `json:"change_users"`
	ChangeGroups IDSet `json:"change_groups"`
}

// Clone returns a deep copy.
func (p Permissions) Clone() Permissions {
	return Permissions{
		ViewUsers:    p.ViewUsers.Clone(),
		ViewGroups:   p.ViewGroups.Clone(),
		ChangeUsers:  p.ChangeUsers.Clone(),
		ChangeGroups: p.ChangeGroups.Clone(),
	}
}

// Clear removes every grant.
func (p *Permissions) Clear() {
	p.ViewUsers.Clear()
	p.ViewGroups.Clear()
	p.ChangeUsers.Clear()
	p.ChangeGroups.Clear()
}

// Intake describes a pending file at consumption time.
type Intake struct {
	Source DocumentSource
	// Path is the absolute path of the pending file.
	Path       string
	MailRuleID ID
}

// Filename is the base name of the pending file.
func (i Intake) Filename() string {
	return filepath.Base(i.Path)
}

// MatchContext is the immutable input to one evaluation. Intake is set for
// consumption-time evaluations only.
type MatchContext struct {
	Document Document
	Intake   *Intake
}
