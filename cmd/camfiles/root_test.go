package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdSetup(t *testing.T) {
	rootCmd := newRootCommand()

	if rootCmd.Use != "camfiles" {
		t.Errorf("expected command Use %q, got %q", "camfiles", rootCmd.Use)
	}

	want := map[string]bool{"version": false, "ensure-dir": false, "ensure-file": false, "cache-dir": false, "clear-cache": false, "output-dir": false, "new-photo": false}
	for _, cmd := range rootCmd.Commands() {
		name := strings.Fields(cmd.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s subcommand not found", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "camfiles version dev")
}

func TestEnsureCommands(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "internal")

	nested := filepath.Join(dir, "DCIM", "Camera")
	out, err := runCommand(t, "--cache-dir", cacheDir, "ensure-dir", nested)
	require.NoError(t, err)
	assert.Contains(t, out, "ok\t"+nested)

	file := filepath.Join(dir, "thumbs", "a.jpg")
	out, err = runCommand(t, "--cache-dir", cacheDir, "ensure-file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "ok\t"+file)
	_, err = os.Stat(file)
	assert.NoError(t, err)

	out, err = runCommand(t, "--cache-dir", cacheDir, "ensure-file", nested, "   ")
	assert.Error(t, err)
	assert.Contains(t, out, "failed\t"+nested)
	assert.Contains(t, err.Error(), "2 of 2 paths failed")
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	external := filepath.Join(dir, "sdcard")
	require.NoError(t, os.MkdirAll(external, 0755))
	base := []string{"--external-root", external, "--cache-dir", filepath.Join(dir, "internal")}

	out, err := runCommand(t, append(base, "cache-dir")...)
	require.NoError(t, err)
	cacheDir := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(external, "Pictures", "cache"), cacheDir)

	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "a.jpg"), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(cacheDir, "keep"), 0755))

	out, err = runCommand(t, append(base, "clear-cache", "--list")...)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(cacheDir, "a.jpg"))
	assert.Contains(t, out, "removed 1 files from "+cacheDir)

	_, err = os.Stat(filepath.Join(cacheDir, "keep"))
	assert.NoError(t, err)

	out, err = runCommand(t, append(base, "--mounted", "false", "cache-dir")...)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "internal", "cache"), strings.TrimSpace(out))
}

func TestInvalidConfig(t *testing.T) {
	_, err := runCommand(t, "--mounted", "sometimes", "cache-dir")
	assert.Error(t, err)

	_, err = runCommand(t, "--log-level", "loud", "cache-dir")
	assert.Error(t, err)
}

func TestPhotoCommands(t *testing.T) {
	dir := t.TempDir()
	external := filepath.Join(dir, "sdcard")
	require.NoError(t, os.MkdirAll(external, 0755))
	base := []string{
		"--external-root", external,
		"--cache-dir", filepath.Join(dir, "internal", "cache"),
		"--files-dir", filepath.Join(dir, "internal", "files"),
		"--app-name", "CameraXBasic",
	}

	out, err := runCommand(t, append(base, "output-dir")...)
	require.NoError(t, err)
	outputDir := filepath.Join(external, "Media", "CameraXBasic")
	assert.Equal(t, outputDir, strings.TrimSpace(out))

	out, err = runCommand(t, append(base, "new-photo", "--create")...)
	require.NoError(t, err)
	photo := strings.TrimSpace(out)
	assert.Equal(t, outputDir, filepath.Dir(photo))
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}-\d{3}\.jpg$`, filepath.Base(photo))
	info, err := os.Stat(photo)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	out, err = runCommand(t, append(base, "--mounted", "false", "output-dir")...)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "internal", "files"), strings.TrimSpace(out))
}
