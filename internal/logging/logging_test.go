package logging

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo, false))

	logger.Debug("hidden")
	logger.Info("dataset loaded", "rows", 38, Since(time.Now()))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "dataset loaded")
	assert.Contains(t, out, "rows=38")
	assert.Contains(t, out, "took=")
	assert.NotContains(t, out, "\x1b[")
}
