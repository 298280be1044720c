package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogger_FieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := base.WithContext(context.Background())

	ctx = WithLogger(ctx, map[string]interface{}{"request_id": "req-1"})
	ErrorLog(ctx, errors.New("boom"), "create booking for worker %d", 7)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "create booking for worker 7", entry["message"])
	assert.Equal(t, "error", entry["level"])
}

func TestGetLogger_FallsBackToGlobal(t *testing.T) {
	assert.Same(t, Logger(), getLogger(context.Background()))
}

func TestErrorLog_NilErrorAndFormatting(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	ErrorLog(ctx, nil, "publish %s for booking %d", "booking_created", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "publish booking_created for booking 3", entry["message"])
	assert.NotContains(t, entry, "error")
}
