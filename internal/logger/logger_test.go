package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("Prod Is JSON At Info", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter("prod", &buf)

		log.Debug("hidden")
		log.Info("charged", "user_id", 1)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "charged", line["msg"])
		assert.Equal(t, "points", line["service"])
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("Dev Is Text At Debug", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter("dev", &buf).Debug("visible")

		assert.Contains(t, buf.String(), "msg=visible")
		assert.Contains(t, buf.String(), "service=points")
	})
}
