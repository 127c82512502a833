package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(logrus.InfoLevel, &buf)

	log.Debug("hidden")
	log.WithField("count", 2).Info("syncing addons")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "syncing addons")
	assert.Contains(t, out, "count=2")
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() { log.Error("dropped") })
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, level)

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	level, err = ParseLevel(" INFO ")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
