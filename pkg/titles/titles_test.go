// pkg/titles/titles_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test title template validation and interpolation

package titles_test

import (
	"testing"
	"time"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/titles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVars() titles.Vars {
	return titles.Vars{
		Correspondent:    "Acme",
		DocumentType:     "Invoice",
		OwnerUsername:    "alice",
		OriginalFilename: "simple",
		Added:            time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC),
		Created:          time.Date(2023, time.December, 24, 0, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		tpl  string
		want string
	}{
		{"Doc from {correspondent}", "Doc from Acme"},
		{"{document_type} {created_year}-{created_month}-{created_day}", "Invoice 2023-12-24"},
		{"{added} {added_time}", "2024-03-05 14:07"},
		{"{added_month_name} {added_month_name_short} {added_year_short}", "March Mar 24"},
		{"{created}", "2023-12-24"},
		{"{original_filename} by {owner_username}", "simple by alice"},
		{"{ correspondent }", "Acme"},
		{"  padded {document_type}  ", "padded Invoice"},
		{"no placeholders", "no placeholders"},
	}

	for _, tt := range tests {
		t.Run(tt.tpl, func(t *testing.T) {
			got, err := titles.Render(tt.tpl, sampleVars())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Invalid(t *testing.T) {
	tests := []string{
		"Doc {created_year]",
		"Doc created_year}",
		"Doc {{created_year}}",
		"Doc {}",
		"Doc {unknown}",
	}

	for _, tpl := range tests {
		t.Run(tpl, func(t *testing.T) {
			got, err := titles.Render(tpl, sampleVars())
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))
		})
	}
}

func TestRender_CreatedUnavailableWithoutDate(t *testing.T) {
	vars := sampleVars()
	vars.Created = time.Time{}

	_, err := titles.Render("{created_year}", vars)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))

	got, err := titles.Render("{added_year}", vars)
	require.NoError(t, err)
	assert.Equal(t, "2024", got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, titles.Validate("{correspondent} and { added_year }"))
	assert.NoError(t, titles.Validate("{created_year}"), "created placeholders are known names")
	assert.NoError(t, titles.Validate("no placeholders"))
	assert.Error(t, titles.Validate("{correspondent"))

	err := titles.Validate("Doc {bogus}")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))
	assert.Contains(t, err.Error(), `"bogus"`)
}

func TestPlaceholders_AllRender(t *testing.T) {
	for _, name := range titles.Placeholders() {
		_, err := titles.Render("{"+name+"}", sampleVars())
		assert.NoError(t, err, name)
	}
}
