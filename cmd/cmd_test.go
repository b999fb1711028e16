package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathduel/internal/compare"
	"github.com/abhisek/mathduel/internal/llm"
	"github.com/abhisek/mathduel/internal/program"
	"github.com/abhisek/mathduel/internal/server"
	"github.com/abhisek/mathduel/internal/solver"
)

func TestPrintComparison(t *testing.T) {
	board := compare.NewBoard()
	board.Base.Reasoning.SetText("add them")
	board.Base.Answer.SetText("4")
	board.Base.Answer.SetMarked(true)
	board.Base.Time.SetText("0.50")
	board.Optimized.Answer.SetText("four")
	board.Optimized.Answer.SetMarked(true)
	board.Optimized.Time.SetText("0.25")

	var out bytes.Buffer
	printComparison(&out, "2+2", board, true)
	got := out.String()

	assert.Contains(t, got, "=== Math Problem Solver ===")
	assert.Contains(t, got, "Problem: 2+2")
	assert.Contains(t, got, "--- Base model (0.50s) ---")
	assert.Contains(t, got, "--- Optimized model (0.25s) ---")
	assert.Contains(t, got, "Reasoning:\nadd them")
	assert.Contains(t, got, "4  ≠ different")
}

func TestPrintComparison_HidesReasoning(t *testing.T) {
	board := compare.NewBoard()
	board.Base.Reasoning.SetText("secret steps")

	var out bytes.Buffer
	printComparison(&out, "p", board, false)

	assert.NotContains(t, out.String(), "secret steps")
	assert.NotContains(t, out.String(), "Reasoning:")
}

func TestSolveCommand(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Fallback = json.RawMessage(`{"reasoning":"\\frac{8}{2}","answer":"4"}`)

	srv, err := server.New(server.Options{
		Provider: mock,
		Programs: map[solver.Variant]*program.Program{
			solver.VariantBase:      program.Base(),
			solver.VariantOptimized: program.Base(),
		},
		Settings: program.Settings{MaxTokens: 100},
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	t.Setenv("MATHDUEL_LOG_FILE", filepath.Join(t.TempDir(), "client.log"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"solve", "--server", ts.URL, "--show-reasoning", "what", "is", "8/2"})
	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Problem: what is 8/2")
	assert.Contains(t, got, "8/2")
	assert.Contains(t, got, "Answer:\n4\n")
	assert.NotContains(t, got, "different")
	assert.Equal(t, 2, mock.CallCount())
}
