package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskEmail(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "coach.mueller@club.de", expected: "c***@club.de"},
		{input: "@club.de", expected: "***@club.de"},
		{input: "not-an-email", expected: "***@***"},
		{input: "a@b@c", expected: "***@***"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskEmail(tc.input))
		})
	}
}

func TestResolveLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, resolveLevel("local", ""))
	assert.Equal(t, slog.LevelInfo, resolveLevel("prod", ""))
	assert.Equal(t, slog.LevelWarn, resolveLevel("local", "warn"))
	assert.Equal(t, slog.LevelInfo, resolveLevel("prod", "verbose"))
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "production", "").Info("hello", "member_id", "m-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "m-1", line["member_id"])
}

func TestContextLogger(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, "production", ""))
	ctx = With(ctx, "request_id", "req-1")

	FromContext(ctx).Info("scoped")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
}
