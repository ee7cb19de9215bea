package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-launchpad/pkg/logger/slogx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSONWithContext(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Output: "json", Writer: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	ctx := WithContext(context.Background(), slogx.String("stage", "mint"))
	InfoContext(ctx, "minted item", slogx.Int("remaining", 2))
	DebugContext(ctx, "hidden at info level")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "minted item", record[MessageKey])
	assert.Equal(t, "mint", record["stage"])
	assert.EqualValues(t, 2, record["remaining"])
}

func TestDebugAddsErrorDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Output: "json", Debug: true, Writer: &buf}))
	t.Cleanup(func() { _ = Init(Config{}) })

	ErrorContext(context.Background(), "stage failed", errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "boom", record[ErrorKey])
	assert.Contains(t, record[ErrorVerboseKey], "boom")
	assert.NotEmpty(t, record[ErrorStackTraceKey])
}
