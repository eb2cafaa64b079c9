package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := writeFile(t, "config.yaml", `
platform: posix
stats: true
bounds:
  low: 0
  high: 1000
`)

	out, err := executeCommand(t, "validate", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestValidate_ValidConfigJSON(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "platform: other\n")

	out, err := executeCommand(t, "--format", "json", "validate", cfg)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestValidate_InvertedBounds(t *testing.T) {
	cfg := writeFile(t, "config.yaml", `
bounds:
  low: 100
  high: 1
`)

	out, err := executeCommand(t, "validate", cfg)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "CONFIG_INVALID")
}

func TestValidate_UnknownPlatform(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "platform: msdos\n")

	_, err := executeCommand(t, "validate", cfg)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
