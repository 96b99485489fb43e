package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New("search", Config{Level: "debug", Out: &buf}).With("run_id", "r1")
	l.Debugw("improved", map[string]any{"iter": 7, "cost": 12})
	l.Infof("done in %d steps", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "debug", first["level"])
	assert.Equal(t, "search", first["component"])
	assert.Equal(t, "r1", first["run_id"])
	assert.Equal(t, "improved", first["message"])
	assert.EqualValues(t, 7, first["iter"])
	assert.Contains(t, lines[1], "done in 3 steps")
}

func TestZerologLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New("x", Config{Level: "warn", Out: &buf})
	l.Debugf("hidden")
	l.Infof("hidden")
	l.Warnf("shown")
	l.Errorf("shown too")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
	assert.NotContains(t, buf.String(), "hidden")
}

func TestZerologLogger_ConsoleAndFallback(t *testing.T) {
	var buf bytes.Buffer
	l := New("x", Config{Level: "nonsense", Format: "console", Out: &buf})
	l.Debugf("hidden")
	l.Infof("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "hidden")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	l.Debugf("a")
	l.Debugw("b", nil)
	l.Infof("c")
	l.Warnf("d")
	l.Errorf("e")
}
