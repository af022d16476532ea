package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "leaptable v")
}

func TestRenderCommand_CSVFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	data := "name,length\nCod,3\nShark,5\n"
	require.NoError(t, os.WriteFile("fish.csv", []byte(data), 0o644))

	out, err := execute(t, "render", "--csv", "fish.csv", "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, "name,length\nCod,3\nShark,5\n", out)
}

func TestRenderCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("fish.csv", []byte("name,length\nCod,3\nShark,5\n"), 0o644))

	cfgDoc := `source:
  csv: fish.csv
columns:
  - field: name
    name: Fish
sort:
  - column: name
    ascending: true
output: csv
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leaptable.yaml"), []byte(cfgDoc), 0o644))

	out, err := execute(t, "render")
	require.NoError(t, err)
	assert.Equal(t, "Fish\nCod\nShark\n", out)
}

func TestRenderCommand_MissingSource(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data source")
}

func TestRenderCommand_JSON(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("fish.csv", []byte("name\nCod\n"), 0o644))

	out, err := execute(t, "render", "--csv", "fish.csv", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Cod"}]`, out)
}
