package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/internal/config"
	"github.com/katalvlaran/lvsteiner/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	l.WithField("case", 3).Debug("solved")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "solved", entry["msg"])
	assert.Equal(t, float64(3), entry["case"])
}

func TestNew_TextLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	l.Info("hidden")
	assert.Empty(t, buf.String())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "\x1b[", "buffers are never colored")
}

func TestConfigure_Errors(t *testing.T) {
	var buf bytes.Buffer
	_, err := logging.New(config.LogConfig{Level: "chatty", Format: "text"}, &buf)
	require.Error(t, err)

	_, err = logging.New(config.LogConfig{Level: "info", Format: "xml"}, &buf)
	require.Error(t, err)
}

func TestColorable_NonFile(t *testing.T) {
	assert.False(t, logging.Colorable(&bytes.Buffer{}))
}
