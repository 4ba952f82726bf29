//go:build !(js && wasm)

package console

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Output
	Output = &buf
	t.Cleanup(func() { Output = old })
	return &buf
}

func TestHandler_FormatsRecord(t *testing.T) {
	buf := capture(t)
	logger := slog.New(NewHandler(slog.LevelDebug)).With("app", "counter").WithGroup("cycle")

	logger.Debug("Cycle complete", "n", 3, slog.Group("model", "count", 7))

	assert.Equal(t, "DEBUG Cycle complete app=counter cycle.n=3 cycle.model.count=7\n", buf.String())
}

func TestHandler_Level(t *testing.T) {
	buf := capture(t)
	logger := slog.New(NewHandler(nil))

	logger.Debug("hidden")
	logger.Warn("shown")

	assert.Equal(t, "WARN shown\n", buf.String())
}

func TestLogFunctions(t *testing.T) {
	buf := capture(t)

	Error("mount element not found:", "#app")
	Warn("setTimeout returned no handle")

	assert.Equal(t, "ERROR mount element not found: #app\nWARN setTimeout returned no handle\n", buf.String())
}
