package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staleDoc = `[{"name": "A", "map_locations": [{"map": "Present", "x": 1, "y": 1}]}]`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	exitCode = 0
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckFlagSetsExitCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	require.NoError(t, os.WriteFile(path, []byte(staleDoc), 0644))

	out, err := execute(t, "-xk", path)
	require.NoError(t, err)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, out, "Updating 'A' -> {'map': 'All Eras', 'x': 1537, 'y': 1025}\n")
	assert.Contains(t, out, "needs updates.")

	out, err = execute(t, "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "Modified "+path+"\n", out)

	_, err = execute(t, "--check", path)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
}

func TestMissingFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "file not found")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locations.json")
	require.NoError(t, os.WriteFile(path, []byte(staleDoc), 0644))
	xlsx := filepath.Join(dir, "out.xlsx")

	out, err := execute(t, "export", path, "-o", xlsx)
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+xlsx+"\n", out)
	assert.FileExists(t, xlsx)
}

func TestCheckJSONCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.json"), []byte(`{}`), 0644))
	_, err := execute(t, "checkjson", dir)
	assert.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{`), 0644))
	_, err = execute(t, "checkjson", dir)
	assert.ErrorContains(t, err, "bad.json")
}
