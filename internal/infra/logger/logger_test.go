package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logg, err := New(Config{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logg.GetLevel())

	logg.WithField("serial", "0123456789").Info("inventory loaded")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inventory loaded", entry["msg"])
	assert.Equal(t, "0123456789", entry["serial"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewDefaults(t *testing.T) {
	var buf bytes.Buffer
	logg, err := New(Config{Output: &buf})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logg.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logg.Formatter)

	logg.Info("hidden")
	assert.Zero(t, buf.Len())
	logg.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
	_, err = New(Config{Format: "xml"})
	require.Error(t, err)
}

func TestLogError(t *testing.T) {
	logg, hook := test.NewNullLogger()

	LogError(logg, "inventory", "Save", "writing records", map[string]int{"records": 3}, errors.New("disk full"))
	LogError(logg, "inventory", "Load", "reading records", nil, errors.New("denied"))

	require.Len(t, hook.Entries, 2)
	first := hook.Entries[0]
	assert.Equal(t, logrus.ErrorLevel, first.Level)
	assert.Equal(t, "disk full", first.Message)
	assert.Equal(t, "inventory", first.Data["module"])
	assert.Equal(t, "Save", first.Data["funcName"])
	assert.Equal(t, "writing records", first.Data["context"])
	assert.Equal(t, map[string]int{"records": 3}, first.Data["data"])

	_, hasData := hook.LastEntry().Data["data"]
	assert.False(t, hasData)
}
