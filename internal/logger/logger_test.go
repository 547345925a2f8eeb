package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	t.Run("silent when verbose disabled", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(false)

		Debug("hidden %d", 1)
		Info("hidden")
		Warn("hidden")

		assert.Empty(t, buf.String())
	})

	t.Run("prints with level prefix when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(true)

		Debug("call %s", "list_datasets")
		Warn("retrying")

		out := buf.String()
		assert.Contains(t, out, "[DEBUG] call list_datasets")
		assert.Contains(t, out, "[WARN] retrying")
	})

	t.Run("IsVerbose reflects state", func(t *testing.T) {
		SetVerbose(true)
		assert.True(t, IsVerbose())
		SetVerbose(false)
		assert.False(t, IsVerbose())
	})
}
