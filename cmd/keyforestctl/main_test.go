package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyforest/internal/models"
)

func run(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data-dir", dataDir}, args...))
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func runErr(t *testing.T, dataDir string, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--data-dir", dataDir}, args...))
	return cmd.Execute()
}

func TestProfiles_ListSeedsDefault(t *testing.T) {
	dir := t.TempDir()

	out := run(t, dir, "profiles", "list", "--json")
	var list []models.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, []models.Profile{models.DefaultProfile()}, list)
	assert.FileExists(t, filepath.Join(dir, "apps.json"))
}

func TestProfiles_AddRenameDelete(t *testing.T) {
	dir := t.TempDir()

	id := strings.TrimSpace(run(t, dir, "profiles", "add", "Visual Studio Code"))
	require.True(t, strings.HasPrefix(id, "app_"), id)

	run(t, dir, "profiles", "rename", id, "VS Code")
	out := run(t, dir, "profiles", "list")
	assert.Contains(t, out, "VS Code")

	run(t, dir, "profiles", "delete", id)
	out = run(t, dir, "profiles", "list")
	assert.NotContains(t, out, id)

	assert.Error(t, runErr(t, dir, "profiles", "delete", "default"))
}

func TestShortcuts_SetShowClear(t *testing.T) {
	dir := t.TempDir()

	run(t, dir, "shortcuts", "set", "default", "ctrl", "s", "Save", "file")
	out := run(t, dir, "shortcuts", "show", "default")
	assert.Contains(t, out, "Ctrl + s")
	assert.Contains(t, out, "Save file")

	out = run(t, dir, "shortcuts", "show", "default", "--modifier", "alt", "--json")
	var set models.ShortcutSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Empty(t, set[models.ModifierAlt])

	run(t, dir, "shortcuts", "clear", "default", "ctrl", "s")
	out = run(t, dir, "shortcuts", "show", "default")
	assert.NotContains(t, out, "Save file")

	assert.Error(t, runErr(t, dir, "shortcuts", "set", "default", "hyper", "s", "x"))
	assert.Error(t, runErr(t, dir, "shortcuts", "set", "default", "ctrl", "NumLock", "x"))
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	file := filepath.Join(t.TempDir(), "export.json")

	run(t, src, "shortcuts", "set", "default", "ctrl_shift", "p", "Command palette")
	run(t, src, "export", "default", file)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	var doc models.ExportDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "default", doc.AppID)
	assert.Equal(t, "Default", doc.AppName)
	assert.NotEmpty(t, doc.ExportDate)

	run(t, dst, "shortcuts", "set", "default", "plain", "F5", "Run")
	run(t, dst, "import", file)

	out := run(t, dst, "shortcuts", "show", "default", "--json")
	var set models.ShortcutSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, "Command palette", set[models.ModifierCtrlShift]["p"])
	assert.Empty(t, set[models.ModifierPlain])

	out = run(t, dst, "backups", "default")
	assert.Contains(t, out, filepath.Join("backups", "default"))
}

func TestImport_CreatesMissingProfile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(t.TempDir(), "vim.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"appId":"app_vim","appName":"Vim","shortcuts":{"plain":{"i":"Insert mode"}}}`), 0644))

	run(t, dir, "import", file)
	out := run(t, dir, "profiles", "list")
	assert.Contains(t, out, "app_vim")
	assert.Contains(t, out, "Vim")
}

func TestImport_RejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"appId":"x"}`), 0644))

	err := runErr(t, dir, "import", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid import file format")
}

func TestMigrate_StripsIcons(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apps.json"),
		[]byte(`[{"id":"default","name":"Default","icon":"far fa-keyboard"}]`), 0644))

	out := run(t, dir, "migrate")
	assert.Contains(t, out, "Removed legacy profile icons")

	raw, err := os.ReadFile(filepath.Join(dir, "apps.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "icon")
}
