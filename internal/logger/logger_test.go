package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("caller check")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeEntry(t, &buf)
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("client", path)

	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"client"`)
	assert.Contains(t, string(data), "to file")
}

func TestNewClientLogger_UnwritablePathDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")
	l := NewClientLogger("client", path)
	require.NotNil(t, l)

	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetLevel("not-a-level")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("parent")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf).With().Str("trace_id", "abc").Logger()

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	assert.Contains(t, childBuf.String(), `"trace_id":"abc"`)
	assert.NotContains(t, parentBuf.String(), "trace_id")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx")
	l.Logger = l.Output(&buf)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx", entry["role"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("req")
	l.Logger = l.Output(&buf)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(l.WithContext(r.Context()))
	FromRequest(r).Info().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req", entry["role"])
}

func TestFromContext_WithoutLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
