package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommandSuccess(t *testing.T) {
	projectDir := filepath.Join(t.TempDir(), "demo")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewInitCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{projectDir, "mvp", "A demo project"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Created project directory:")
	assert.Contains(t, output, "Initializing harness for: demo")
	assert.Contains(t, output, "A demo project")
	assert.Contains(t, output, "✓ Created")
	assert.Contains(t, output, "✓ Harness initialization complete")
	assert.Contains(t, output, "Next steps:")

	harnessDir := filepath.Join(projectDir, "long_running", "mvp")
	for _, name := range []string{"feature_list.json", "progress.txt", "init.sh"} {
		_, err := os.Stat(filepath.Join(harnessDir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}

func TestInitCommandExistingProjectDir(t *testing.T) {
	projectDir := t.TempDir()

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewInitCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{projectDir, "mvp", "desc"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Created project directory:")
}

func TestInitCommandJSON(t *testing.T) {
	projectDir := filepath.Join(t.TempDir(), "demo")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewInitCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{projectDir, "mvp", "A demo project"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "demo", data["project_name"])
	assert.Equal(t, true, data["created_project_dir"])

	files, ok := data["files"].([]interface{})
	require.True(t, ok)
	assert.Len(t, files, 3)
}

func TestInitCommandArgCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", []string{}},
		{"one", []string{"./proj"}},
		{"two", []string{"./proj", "mvp"}},
		{"four", []string{"./proj", "mvp", "desc", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			rootOpts := &RootOptions{Format: "text"}
			cmd := NewInitCommand(rootOpts)
			cmd.SetOut(buf)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "3 arg")
		})
	}
}

func TestInitCommandInvalidFeatureName(t *testing.T) {
	projectDir := filepath.Join(t.TempDir(), "demo")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewInitCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{projectDir, "bad/name", "desc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeInvalidName)
	assert.Contains(t, buf.String(), "Error [E002]")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	// Argument errors are reported before any filesystem side effect.
	_, statErr := os.Stat(projectDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInitCommandInvalidFeatureNameJSON(t *testing.T) {
	projectDir := filepath.Join(t.TempDir(), "demo")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewInitCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{projectDir, "..", "desc"})

	err := cmd.Execute()
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidName, resp.Error.Code)
}

func TestInitCommandUnwritablePath(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	projectDir := t.TempDir()
	require.NoError(t, os.Chmod(projectDir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(projectDir, 0o755) })

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewInitCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{projectDir, "mvp", "desc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrCodeMkdir)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInitCommandRerun(t *testing.T) {
	projectDir := filepath.Join(t.TempDir(), "demo")

	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootOpts := &RootOptions{Format: "text"}
		cmd := NewInitCommand(rootOpts)
		cmd.SetOut(buf)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{projectDir, "mvp", "A demo project"})

		err := cmd.Execute()
		require.NoError(t, err, "run %d should succeed", i+1)
	}
}
