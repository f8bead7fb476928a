package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)
	l.Info("exploring %d nodes", 10)
	assert.Empty(t, buf.String())

	l.Warn("deadline approaching")
	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "deadline approaching")
}

func TestWithFieldsAppendsKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf).WithField("guide", 6).WithFields(map[string]interface{}{"nodes": 42})
	l.Info("incumbent updated")

	out := buf.String()
	assert.True(t, strings.Contains(out, "guide=6"))
	assert.True(t, strings.Contains(out, "nodes=42"))
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	base := New(LevelInfo, &buf)
	_ = base.WithField("k", "v")
	base.Info("plain")
	assert.False(t, strings.Contains(buf.String(), "k=v"))
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	var n Null
	n.Info("ignored")
	chained := n.WithField("x", 1)
	chained.Error("still ignored")
}
