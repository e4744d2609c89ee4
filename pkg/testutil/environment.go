package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEnvironment is a temp directory holding workflow files and
// fixtures. Logs written by the CLI go to a state directory inside it.
type TestEnvironment struct {
	Root     string
	StateDir string

	t *testing.T
}

// NewTestEnvironment creates an isolated environment and points
// XDG_STATE_HOME at it. DOCFLOW_* settings variables are cleared.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:     root,
		StateDir: filepath.Join(root, "state"),
		t:        t,
	}
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	for _, name := range []string{"DOCFLOW_OUTPUT_FORMAT", "DOCFLOW_FUZZY_THRESHOLD", "DOCFLOW_LOCAL_TIMEZONE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return env
}

// Path returns the absolute path of name inside the environment
func (e *TestEnvironment) Path(name string) string {
	return filepath.Join(e.Root, name)
}

// WriteFile writes content to name, creating parent directories
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.t.Helper()

	path := e.Path(name)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// FileExists reports whether name exists in the environment
func (e *TestEnvironment) FileExists(name string) bool {
	_, err := os.Stat(e.Path(name))
	return err == nil
}
