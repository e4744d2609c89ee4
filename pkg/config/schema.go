package config

import (
	"time"

	"github.com/arthur-debert/docflow/pkg/types"
)

// Config is the decoded contents of a workflow file plus settings.
type Config struct {
	Settings  Settings       `koanf:"settings" toml:"settings"`
	Catalog   CatalogFile    `koanf:"catalog" toml:"catalog"`
	Workflows []WorkflowFile `koanf:"workflows" toml:"workflows"`
}

// Settings are runtime options that do not change workflow semantics.
type Settings struct {
	OutputFormat   string `koanf:"output_format" toml:"output_format"`
	FuzzyThreshold int    `koanf:"fuzzy_threshold" toml:"fuzzy_threshold"`
	LocalTimezone  string `koanf:"local_timezone" toml:"local_timezone"`
}

// Location resolves LocalTimezone. An empty zone yields nil.
func (s Settings) Location() (*time.Location, error) {
	if s.LocalTimezone == "" {
		return nil, nil
	}
	return time.LoadLocation(s.LocalTimezone)
}

// Entity is one named catalog entry.
type Entity struct {
	ID   types.ID `koanf:"id" toml:"id"`
	Name string   `koanf:"name" toml:"name"`
}

// CatalogFile lists display names per entity kind.
type CatalogFile struct {
	Correspondents []Entity `koanf:"correspondents" toml:"correspondents,omitempty"`
	DocumentTypes  []Entity `koanf:"document_types" toml:"document_types,omitempty"`
	Tags           []Entity `koanf:"tags" toml:"tags,omitempty"`
	StoragePaths   []Entity `koanf:"storage_paths" toml:"storage_paths,omitempty"`
	Users          []Entity `koanf:"users" toml:"users,omitempty"`
	Groups         []Entity `koanf:"groups" toml:"groups,omitempty"`
	CustomFields   []Entity `koanf:"custom_fields" toml:"custom_fields,omitempty"`
	MailRules      []Entity `koanf:"mail_rules" toml:"mail_rules,omitempty"`
}

// WorkflowFile is a workflow as written in a configuration file. Enabled
// defaults to true when omitted.
type WorkflowFile struct {
	ID       types.ID      `koanf:"id" toml:"id"`
	Name     string        `koanf:"name" toml:"name"`
	Enabled  *bool         `koanf:"enabled" toml:"enabled,omitempty"`
	Order    int           `koanf:"order" toml:"order"`
	Triggers []TriggerFile `koanf:"triggers" toml:"triggers"`
	Actions  []ActionFile  `koanf:"actions" toml:"actions"`
}

// TriggerFile is a trigger as written in a configuration file.
type TriggerFile struct {
	ID   types.ID          `koanf:"id" toml:"id"`
	Type types.TriggerType `koanf:"type" toml:"type"`

	Sources        []types.DocumentSource `koanf:"sources" toml:"sources,omitempty"`
	FilterMailRule types.ID               `koanf:"filter_mailrule" toml:"filter_mailrule,omitempty"`

	FilterFilename string `koanf:"filter_filename" toml:"filter_filename,omitempty"`
	FilterPath     string `koanf:"filter_path" toml:"filter_path,omitempty"`

	FilterHasTags          []types.ID `koanf:"filter_has_tags" toml:"filter_has_tags,omitempty"`
	FilterHasDocumentType  types.ID   `koanf:"filter_has_document_type" toml:"filter_has_document_type,omitempty"`
	FilterHasCorrespondent types.ID   `koanf:"filter_has_correspondent" toml:"filter_has_correspondent,omitempty"`

	MatchingAlgorithm types.MatchingAlgorithm `koanf:"matching_algorithm" toml:"matching_algorithm,omitempty"`
	Match             string                  `koanf:"match" toml:"match,omitempty"`
	IsInsensitive     bool                    `koanf:"is_insensitive" toml:"is_insensitive,omitempty"`
}

// ActionFile is an action as written in a configuration file. Custom field
// default values are keyed by the field id written as a string.
type ActionFile struct {
	ID   types.ID         `koanf:"id" toml:"id"`
	Type types.ActionType `koanf:"type" toml:"type"`

	AssignTitle         string   `koanf:"assign_title" toml:"assign_title,omitempty"`
	AssignCorrespondent types.ID `koanf:"assign_correspondent" toml:"assign_correspondent,omitempty"`
	AssignDocumentType  types.ID `koanf:"assign_document_type" toml:"assign_document_type,omitempty"`
	AssignStoragePath   types.ID `koanf:"assign_storage_path" toml:"assign_storage_path,omitempty"`
	AssignOwner         types.ID `koanf:"assign_owner" toml:"assign_owner,omitempty"`

	AssignTags              []types.ID        `koanf:"assign_tags" toml:"assign_tags,omitempty"`
	AssignViewUsers         []types.ID        `koanf:"assign_view_users" toml:"assign_view_users,omitempty"`
	AssignViewGroups        []types.ID        `koanf:"assign_view_groups" toml:"assign_view_groups,omitempty"`
	AssignChangeUsers       []types.ID        `koanf:"assign_change_users" toml:"assign_change_users,omitempty"`
	AssignChangeGroups      []types.ID        `koanf:"assign_change_groups" toml:"assign_change_groups,omitempty"`
	AssignCustomFields      []types.ID        `koanf:"assign_custom_fields" toml:"assign_custom_fields,omitempty"`
	AssignCustomFieldValues map[string]string `koanf:"assign_custom_field_values" toml:"assign_custom_field_values,omitempty"`

	RemoveTags              []types.ID `koanf:"remove_tags" toml:"remove_tags,omitempty"`
	RemoveAllTags           bool       `koanf:"remove_all_tags" toml:"remove_all_tags,omitempty"`
	RemoveCorrespondents    []types.ID `koanf:"remove_correspondents" toml:"remove_correspondents,omitempty"`
	RemoveAllCorrespondents bool       `koanf:"remove_all_correspondents" toml:"remove_all_correspondents,omitempty"`
	RemoveDocumentTypes     []types.ID `koanf:"remove_document_types" toml:"remove_document_types,omitempty"`
	RemoveAllDocumentTypes  bool       `koanf:"remove_all_document_types" toml:"remove_all_document_types,omitempty"`
	RemoveStoragePaths      []types.ID `koanf:"remove_storage_paths" toml:"remove_storage_paths,omitempty"`
	RemoveAllStoragePaths   bool       `koanf:"remove_all_storage_paths" toml:"remove_all_storage_paths,omitempty"`
	RemoveOwners            []types.ID `koanf:"remove_owners" toml:"remove_owners,omitempty"`
	RemoveAllOwners         bool       `koanf:"remove_all_owners" toml:"remove_all_owners,omitempty"`
	RemoveViewUsers         []types.ID `koanf:"remove_view_users" toml:"remove_view_users,omitempty"`
	RemoveViewGroups        []types.ID `koanf:"remove_view_groups" toml:"remove_view_groups,omitempty"`
	RemoveChangeUsers       []types.ID `koanf:"remove_change_users" toml:"remove_change_users,omitempty"`
	RemoveChangeGroups      []types.ID `koanf:"remove_change_groups" toml:"remove_change_groups,omitempty"`
	RemoveAllPermissions    bool       `koanf:"remove_all_permissions" toml:"remove_all_permissions,omitempty"`
	RemoveCustomFields      []types.ID `koanf:"remove_custom_fields" toml:"remove_custom_fields,omitempty"`
	RemoveAllCustomFields   bool       `koanf:"remove_all_custom_fields" toml:"remove_all_custom_fields,omitempty"`
}
