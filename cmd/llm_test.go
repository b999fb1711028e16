package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathduel/internal/store"
)

func seedEvents(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	repo := s.EventRepo()
	ctx := context.Background()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		RequestID: "req-1", Provider: "openai", Model: "gpt-4o-mini", Purpose: "solve-base",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true,
		RequestBody: "[user]\n2+2", ResponseBody: `{"answer":"4"}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		RequestID: "req-1", Provider: "openai", Model: "gpt-4o-mini", Purpose: "solve-optimized",
		LatencyMs: 30, ErrorMessage: "rate limited",
	}))
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestLLMList_JSON(t *testing.T) {
	path := seedEvents(t)

	out := run(t, "llm", "list", "--db", path, "--json", "--purpose", "solve-base")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)

	var got eventSummary
	require.NoError(t, sonic.UnmarshalString(lines[0], &got))
	assert.Equal(t, "solve-base", got.Purpose)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, 100, got.InputTokens)
	assert.True(t, got.Success)
}

func TestLLMView(t *testing.T) {
	path := seedEvents(t)

	out := run(t, "llm", "view", "--db", path, "1")
	assert.Contains(t, out, "req-1")
	assert.Contains(t, out, "PROMPT")
	assert.Contains(t, out, "[user]\n2+2")
	assert.Contains(t, out, `{"answer":"4"}`)
}

func TestLLMStats(t *testing.T) {
	path := seedEvents(t)

	out := run(t, "llm", "stats", "--db", path)
	assert.Contains(t, out, "solve-base")
	assert.Contains(t, out, "solve-optimized")
	assert.Contains(t, out, "gpt-4o-mini")
	assert.Contains(t, out, "TOTAL")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0050", formatCost(0.005))
	assert.Equal(t, "$1.25", formatCost(1.25))
}
