package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/types"
)

// Fixture describes one document to run workflows against: the document
// snapshot, its current grants and, for consumption, the intake.
type Fixture struct {
	Trigger     string             `yaml:"trigger"`
	Intake      *IntakeFixture     `yaml:"intake"`
	Document    DocumentFixture    `yaml:"document"`
	Permissions PermissionsFixture `yaml:"permissions"`
}

// IntakeFixture is the consumption-time part of a fixture.
type IntakeFixture struct {
	Source   string   `yaml:"source"`
	Path     string   `yaml:"path"`
	MailRule types.ID `yaml:"mail_rule"`
}

// DocumentFixture is a document snapshot.
type DocumentFixture struct {
	ID               types.ID             `yaml:"id"`
	Title            string               `yaml:"title"`
	Correspondent    types.ID             `yaml:"correspondent"`
	DocumentType     types.ID             `yaml:"document_type"`
	StoragePath      types.ID             `yaml:"storage_path"`
	Owner            types.ID             `yaml:"owner"`
	Tags             []types.ID           `yaml:"tags"`
	Content          string               `yaml:"content"`
	OriginalFilename string               `yaml:"original_filename"`
	SourcePath       string               `yaml:"source_path"`
	Created          time.Time            `yaml:"created"`
	Added            time.Time            `yaml:"added"`
	CustomFields     []CustomFieldFixture `yaml:"custom_fields"`
}

// CustomFieldFixture is one custom field instance.
type CustomFieldFixture struct {
	Field types.ID `yaml:"field"`
	Value *string  `yaml:"value"`
}

// PermissionsFixture lists current grants.
type PermissionsFixture struct {
	ViewUsers    []types.ID `yaml:"view_users"`
	ViewGroups   []types.ID `yaml:"view_groups"`
	ChangeUsers  []types.ID `yaml:"change_users"`
	ChangeGroups []types.ID `yaml:"change_groups"`
}

// LoadFixture reads a YAML document fixture.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read document fixture %s", path).
			WithDetail("path", path)
	}
	return ParseFixture(data)
}

// ParseFixture decodes a YAML document fixture.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid document fixture")
	}
	if f.Intake != nil && f.Intake.Source != "" {
		if _, err := types.ParseDocumentSource(f.Intake.Source); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid document fixture")
		}
	}
	if f.Trigger != "" {
		if _, err := types.ParseTriggerType(f.Trigger); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid document fixture")
		}
	}
	return &f, nil
}

// TriggerType returns the fixture's trigger type. Without an explicit one,
// fixtures with an intake default to consumption and others to
// document_updated.
func (f *Fixture) TriggerType() types.TriggerType {
	if f.Trigger != "" {
		if tt, err := types.ParseTriggerType(f.Trigger); err == nil {
			return tt
		}
	}
	if f.Intake != nil {
		return types.TriggerConsumption
	}
	return types.TriggerDocumentUpdated
}

// MatchContext converts the fixture to engine types. A missing added date
// is filled with now.
func (f *Fixture) MatchContext(now time.Time) types.MatchContext {
	d := f.Document
	doc := types.Document{
		ID:               d.ID,
		Title:            d.Title,
		Correspondent:    d.Correspondent,
		DocumentType:     d.DocumentType,
		StoragePath:      d.StoragePath,
		Owner:            d.Owner,
		Tags:             types.NewIDSet(d.Tags...),
		Content:          d.Content,
		OriginalFilename: d.OriginalFilename,
		SourcePath:       d.SourcePath,
		Created:          d.Created,
		Added:            d.Added,
	}
	if doc.Added.IsZero() {
		doc.Added = now
	}
	for _, cf := range d.CustomFields {
		doc.CustomFields = append(doc.CustomFields, types.CustomFieldValue{Field: cf.Field, Value: cf.Value})
	}

	mctx := types.MatchContext{Document: doc}
	if f.Intake != nil {
		src, _ := types.ParseDocumentSource(f.Intake.Source)
		mctx.Intake = &types.Intake{
			Source:     src,
			Path:       f.Intake.Path,
			MailRuleID: f.Intake.MailRule,
		}
	}
	return mctx
}

// CurrentPermissions returns the fixture's grants.
func (f *Fixture) CurrentPermissions() types.Permissions {
	p := f.Permissions
	return types.Permissions{
		ViewUsers:    types.NewIDSet(p.ViewUsers...),
		ViewGroups:   types.NewIDSet(p.ViewGroups...),
		ChangeUsers:  types.NewIDSet(p.ChangeUsers...),
		ChangeGroups: types.NewIDSet(p.ChangeGroups...),
	}
}
