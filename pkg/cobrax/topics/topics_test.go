// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test topic discovery and the topic-aware help command

package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/docflow/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"matching.md":                {Data: []byte("# Matching\n\nAlgorithms")},
		"titles.txt":                 {Data: []byte("Title placeholders")},
		"option-fuzzy-threshold.txt": {Data: []byte("Fuzzy threshold")},
		"nested/workflows.md":        {Data: []byte("# Workflows")},
		"ignore.json":                {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	tm := topics.New(testFS())
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"matching", "option-fuzzy-threshold", "titles", "workflows"}, tm.ListTopics())

	topic, ok := tm.GetTopic("titles")
	require.True(t, ok)
	assert.Equal(t, "Title placeholders", topic.Content)

	_, ok = tm.GetTopic("ignore")
	assert.False(t, ok)
}

func TestScan_CustomExtensions(t *testing.T) {
	tm := topics.NewWithOptions(testFS(), topics.Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Scan())
	assert.Equal(t, []string{"ignore"}, tm.ListTopics())
}

func TestScan_NilFS(t *testing.T) {
	tm := topics.New(nil)
	require.NoError(t, tm.Scan())
	assert.Empty(t, tm.ListTopics())
}

func TestGetTopic_FlagStyle(t *testing.T) {
	tm := topics.New(testFS())
	require.NoError(t, tm.Scan())

	for _, name := range []string{"--fuzzy-threshold", "-fuzzy-threshold", "fuzzy-threshold"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Fuzzy threshold", topic.Content)
	}
}

func TestPlainRenderer(t *testing.T) {
	r := &topics.PlainRenderer{}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}

func TestGlamourRenderer_NonMarkdown(t *testing.T) {
	r := topics.NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &topics.GlamourRenderer{Style: "notty", Width: 40}
	out := r.Render("# Heading\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "text")
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "app", Short: "test app"}
	root.AddCommand(&cobra.Command{Use: "run", Short: "run things", Run: func(*cobra.Command, []string) {}})
	return root
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{"topic list", []string{"help", "topics"}, []string{"General topics:", "  matching", "--fuzzy-threshold", "Use 'app help <topic>'"}},
		{"topic", []string{"help", "titles"}, []string{"Title placeholders"}},
		{"option topic", []string{"help", "--fuzzy-threshold"}, []string{"Fuzzy threshold"}},
		{"command", []string{"help", "run"}, []string{"run things"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRoot()
			_, err := topics.Initialize(root, testFS())
			require.NoError(t, err)

			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())

			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestHelpCommand_NoTopics(t *testing.T) {
	root := newRoot()
	_, err := topics.Initialize(root, fstest.MapFS{})
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "No help topics available."))
}
