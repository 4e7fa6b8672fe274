package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pagetabs/internal/cli"
	"github.com/pluqqy/pagetabs/pkg/files"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli.SetOutput(&out, &out)
	t.Cleanup(func() {
		cli.SetOutput(os.Stdout, os.Stderr)
		cli.SetGlobalFlags(false, false)
	})

	root := NewRootCommand("1.2.3")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func initSettings(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), files.ConfigDir, files.SettingsFile)
	_, err := runCommand(t, "", "init", "--config", path)
	require.NoError(t, err)
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pagetabs version 1.2.3\n", out)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), files.ConfigDir, files.SettingsFile)

	out, err := runCommand(t, "", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)
	assert.FileExists(t, path)

	_, err = runCommand(t, "", "init", "--config", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, files.ErrSettingsExist)
	assert.Contains(t, err.Error(), "--force")

	out, err = runCommand(t, "", "init", "--config", path, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Overwrote existing settings")
}

func TestInitCommandQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	out, err := runCommand(t, "", "init", "--config", path, "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListCommandText(t *testing.T) {
	path := initSettings(t)

	out, err := runCommand(t, "", "list", "--config", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "ICON")
	assert.Contains(t, lines[2], "*1")
	assert.Contains(t, lines[2], "info")
	assert.Contains(t, lines[2], "Info")
	assert.Contains(t, lines[3], "document")
	assert.Contains(t, lines[5], "ending")
	assert.Contains(t, lines[5], "Ending")
}

func TestListCommandStructured(t *testing.T) {
	path := initSettings(t)

	t.Run("json", func(t *testing.T) {
		out, err := runCommand(t, "", "list", "--config", path, "-o", "json")
		require.NoError(t, err)

		var result ListResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, 4, result.Count)
		assert.Equal(t, "Info", result.Pages[0].Name)
		assert.Equal(t, "info", result.Pages[0].Icon)
		assert.Equal(t, 1, result.Pages[0].Position)
		assert.Equal(t, result.Pages[0].ID, result.Active)
		assert.Equal(t, "ending", result.Pages[3].Icon)
	})

	t.Run("yaml ids are stable", func(t *testing.T) {
		first, err := runCommand(t, "", "list", "--config", path, "-o", "yaml")
		require.NoError(t, err)
		second, err := runCommand(t, "", "list", "--config", path, "-o", "yaml")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		var result ListResult
		require.NoError(t, yaml.Unmarshal([]byte(first), &result))
		assert.Len(t, result.Pages, 4)
		assert.NotEmpty(t, result.Pages[1].ID)
	})
}

func TestListCommandInvalidOutput(t *testing.T) {
	_, err := runCommand(t, "", "list", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestListCommandEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pages: []\n"), 0o644))

	out, err := runCommand(t, "", "list", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "No pages\n", out)
}

func TestShellCommand(t *testing.T) {
	path := initSettings(t)

	out, err := runCommand(t, "add\nmove 5 0\nlist\nquit\nadd\n", "shell", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `Added "New Page" at position 5`)
	assert.Contains(t, out, `Moved "New Page" to position 1`)
	assert.Equal(t, 1, strings.Count(out, "Added"), "input after quit is not read")

	listed, err := runCommand(t, "", "list", "--config", path, "-o", "json")
	require.NoError(t, err)
	assert.NotContains(t, listed, "New Page", "shell changes are not saved")
}
