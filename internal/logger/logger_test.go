package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{"warning", WarnLevel, false},
		{" error ", ErrorLevel, false},
		{"verbose", InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, DebugLevel)

	log.Info("Navigation", "month changed", map[string]interface{}{"month": 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Navigation", entry["component"])
	assert.Equal(t, "month changed", entry["message"])
	assert.EqualValues(t, 3, entry["month"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Debug("Test", "hidden", nil)
	log.Info("Test", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Error("Test", errors.New("boom"), nil)
	assert.True(t, strings.Contains(buf.String(), "boom"))
}
