package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAuthFlags() {
	authSetAPIKey = ""
	authSetBaseURL = ""
}

func TestAuthSet_StoresCredentials(t *testing.T) {
	resetAuthFlags()
	defer resetAuthFlags()

	dir := t.TempDir()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"auth", "set",
		"--config-dir", dir,
		"--api-key", "dataset-test",
		"--base-url", "https://api.example.com/v1",
	})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Credentials saved to")

	assert.Equal(t, "dataset-test", configStore.GetString("dify.api_key"))
	assert.Equal(t, "https://api.example.com/v1", configStore.GetString("dify.base_url"))
}

func TestAuthSet_RequiresAtLeastOneFlag(t *testing.T) {
	resetAuthFlags()
	defer resetAuthFlags()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"auth", "set", "--config-dir", t.TempDir()})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to store")
}

func TestAuthCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range authCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["set"])
	assert.True(t, names["status"])
}
