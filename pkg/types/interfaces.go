package types

import "fmt"

// EntityKind names the kind of entity an ID refers to.
type EntityKind int

const (
	KindCorrespondent EntityKind = iota + 1
	KindDocumentType
	KindTag
	KindStoragePath
	KindUser
	KindGroup
	KindCustomField
	KindMailRule
)

func (k EntityKind) String() string {
	switch k {
	case KindCorrespondent:
		return "correspondent"
	case KindDocumentType:
		return "document_type"
	case KindTag:
		return "tag"
	case KindStoragePath:
		return "storage_path"
	case KindUser:
		return "user"
	case KindGroup:
		return "group"
	case KindCustomField:
		return "custom_field"
	case KindMailRule:
		return "mail_rule"
	}
	return fmt.Sprintf("EntityKind(%d)", int(k))
}

// Names resolves entity ids to display names.
type Names interface {
	Name(kind EntityKind, id ID) (string, bool)
}

// DisplayName renders id for decision traces and titles. Unset references
// render as "None" and unknown ids as "#<id>".
func DisplayName(names Names, kind EntityKind, id ID) string {
	if id == NoID {
		return "None"
	}
	if names != nil {
		if n, ok := names.Name(kind, id); ok {
			return n
		}
	}
	return fmt.Sprintf("#%d", id)
}

// PermissionSource reads the current grants on a persisted document.
type PermissionSource interface {
	Permissions(document ID) Permissions
}

// PermissionSourceFunc adapts a function to PermissionSource.
type PermissionSourceFunc func(document ID) Permissions

func (f PermissionSourceFunc) Permissions(document ID) Permissions {
	return f(document)
}
