// pkg/types/enums_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test closed enum parsing and naming

package types_test

import (
	"testing"

	"github.com/arthur-debert/docflow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerType_Names(t *testing.T) {
	tests := []struct {
		tt   types.TriggerType
		name string
		text string
	}{
		{types.TriggerConsumption, "CONSUMPTION", "consumption"},
		{types.TriggerDocumentAdded, "DOCUMENT_ADDED", "document_added"},
		{types.TriggerDocumentUpdated, "DOCUMENT_UPDATED", "document_updated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.tt.Valid())
			assert.Equal(t, tt.name, tt.tt.String())

			b, err := tt.tt.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(b))

			var parsed types.TriggerType
			require.NoError(t, parsed.UnmarshalText([]byte(tt.name)))
			assert.Equal(t, tt.tt, parsed)
		})
	}
}

func TestTriggerType_Invalid(t *testing.T) {
	var zero types.TriggerType
	assert.False(t, zero.Valid())
	assert.False(t, types.TriggerType(9).Valid())

	_, err := zero.MarshalText()
	assert.Error(t, err)

	_, err = types.ParseTriggerType("scheduled")
	assert.Error(t, err)
}

func TestDocumentSource_Parse(t *testing.T) {
	for _, in := range []string{"consume_folder", "ConsumeFolder", "folder"} {
		src, err := types.ParseDocumentSource(in)
		require.NoError(t, err, in)
		assert.Equal(t, types.SourceConsumeFolder, src)
	}

	src, err := types.ParseDocumentSource("api_upload")
	require.NoError(t, err)
	assert.Equal(t, "ApiUpload", src.String())

	_, err = types.ParseDocumentSource("webdav")
	assert.Error(t, err)
}

func TestMatchingAlgorithm_Parse(t *testing.T) {
	alg, err := types.ParseMatchingAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, types.MatchNone, alg)

	alg, err = types.ParseMatchingAlgorithm("ALL_WORDS")
	require.NoError(t, err)
	assert.Equal(t, types.MatchAllWords, alg)
	assert.Equal(t, "ALL_WORDS", alg.String())

	assert.False(t, types.MatchingAlgorithm(6).Valid())
}

func TestActionType_DefaultsToAssignment(t *testing.T) {
	var a types.ActionType
	assert.Equal(t, types.ActionAssignment, a)

	require.NoError(t, a.UnmarshalText([]byte("removal")))
	assert.Equal(t, types.ActionRemoval, a)

	require.NoError(t, a.UnmarshalText([]byte("")))
	assert.Equal(t, types.ActionAssignment, a)

	assert.Error(t, a.UnmarshalText([]byte("email")))
}
