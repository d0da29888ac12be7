package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("Settlements recorded", "group_id", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Settlements recorded")
	assert.Contains(t, out, "group_id=3")
	assert.NotContains(t, out, "\x1b[", "no color codes when not writing to a terminal")
}
