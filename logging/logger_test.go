package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, InfoLevel, ParseLevel("chatty"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")
	l.Info("dropped")
	l.WithField("k", "v").Warn("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "v", entry["k"])
}

func TestNewWithComponent(t *testing.T) {
	e := NewWithComponent("info", "reduce")
	assert.Equal(t, "reduce", e.Data["component"])
}

func TestDiscard(t *testing.T) {
	l := Discard()
	hook := test.NewLocal(l.(*logrus.Logger))
	l.Warn("quiet")
	require.Len(t, hook.Entries, 1, "entries still reach hooks")
}
