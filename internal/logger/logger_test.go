package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	SetOutput(&buf)
	Init(level)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		Init("info")
	})

	return &buf
}

func TestLoggerFunctions(t *testing.T) {
	buf := capture(t, "invalid") // should default to info

	Debugf("%s", "debugf")
	Warnf("%s", "warnf")
	Error("error")

	out := buf.String()
	assert.NotContains(t, out, "debugf")
	assert.Contains(t, out, "level=warning msg=warnf")
	assert.Contains(t, out, "level=error msg=error")
}

func TestInitDebugLevel(t *testing.T) {
	buf := capture(t, "debug")

	Debugf("skipping excluded directory: %s", "/tmp/x/.git")

	assert.Contains(t, buf.String(), "skipping excluded directory: /tmp/x/.git")
}

func TestInitErrorLevelDropsWarnings(t *testing.T) {
	buf := capture(t, "error")

	Warnf("could not get size for %s", "/tmp/x")

	assert.Empty(t, buf.String())
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("warn"))
	assert.True(t, ValidLevel("DEBUG"))
	assert.False(t, ValidLevel("loud"))
}
