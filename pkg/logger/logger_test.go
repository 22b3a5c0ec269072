package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriterWritesJSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	InitWithWriter("inventory-test", false, &buf)
	SetLevel("info")

	Info(context.Background()).Str("sku", "WM001").Msg("product created")
	Debug(context.Background()).Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "inventory-test", entry["service"])
	assert.Equal(t, "WM001", entry["sku"])
	assert.Equal(t, "product created", entry["message"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	SetLevel("verbose")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	SetLevel("WARN")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
