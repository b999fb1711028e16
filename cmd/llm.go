package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathduel/internal/llm"
	"github.com/abhisek/mathduel/internal/store"
	"github.com/abhisek/mathduel/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the solve server's LLM event log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		after, _ := cmd.Flags().GetInt("after")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{
			Limit:   limit,
			Purpose: purpose,
			After:   after,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if asJSON {
			return writeEventsJSON(w, events)
		}
		if len(events) == 0 {
			fmt.Fprintln(w, "No LLM events found.")
			return nil
		}

		t := newTable("ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
		for _, e := range events {
			t.Row(
				strconv.Itoa(e.ID),
				e.Timestamp.Local().Format(timeLayout),
				e.Purpose,
				truncate(e.Model, 28),
				strconv.Itoa(e.InputTokens),
				strconv.Itoa(e.OutputTokens),
				strconv.FormatInt(e.LatencyMs, 10),
				okMark(e.Success),
			)
		}
		lipgloss.Fprintln(w, t)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full prompt and response of an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		printEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per variant and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.EventRepo()
		purposes, err := repo.LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		models, err := repo.LLMUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(purposes) == 0 {
			fmt.Fprintln(w, "No LLM usage recorded yet.")
			return nil
		}
		printPurposeUsage(w, purposes)
		fmt.Fprintln(w)
		printModelCost(w, models)
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (solve-base, solve-optimized)")
	llmListCmd.Flags().Int("after", 0, "Only show events with an ID above this one")
	llmListCmd.Flags().Bool("json", false, "Print events as JSON lines")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Label.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// eventSummary is the JSON line written by `llm list --json`. Bodies are
// left out; use `llm view` for them.
type eventSummary struct {
	ID           int    `json:"id"`
	Time         string `json:"time"`
	RequestID    string `json:"request_id,omitempty"`
	Purpose      string `json:"purpose"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
	LatencyMs    int64  `json:"latency_ms"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

func writeEventsJSON(w io.Writer, events []store.LLMEvent) error {
	for _, e := range events {
		line, err := sonic.Marshal(eventSummary{
			ID:           e.ID,
			Time:         e.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"),
			RequestID:    e.RequestID,
			Purpose:      e.Purpose,
			Provider:     e.Provider,
			Model:        e.Model,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			Error:        e.ErrorMessage,
		})
		if err != nil {
			return fmt.Errorf("encode event %d: %w", e.ID, err)
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

func printEvent(w io.Writer, e *store.LLMEvent) {
	field := func(name, value string) {
		fmt.Fprintf(w, "%-10s %s\n", name+":", value)
	}

	field("ID", strconv.Itoa(e.ID))
	field("Time", e.Timestamp.Local().Format(timeLayout))
	if e.RequestID != "" {
		field("Request", e.RequestID)
	}
	field("Purpose", e.Purpose)
	field("Provider", e.Provider)
	field("Model", e.Model)
	field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
	field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
	field("Success", strconv.FormatBool(e.Success))
	if e.ErrorMessage != "" {
		field("Error", e.ErrorMessage)
	}

	section := func(title, body string) {
		sep := strings.Repeat("─", 60)
		fmt.Fprintf(w, "\n%s\n%s\n%s\n", sep, title, sep)
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintln(w, body)
	}
	section("PROMPT", e.RequestBody)
	section("RESPONSE", e.ResponseBody)
}

func printPurposeUsage(w io.Writer, usage []store.PurposeUsage) {
	t := newTable("Purpose", "Calls", "Failed", "Input", "Output", "Avg Ms")
	var calls, failed, in, out int
	for _, u := range usage {
		t.Row(u.Purpose,
			strconv.Itoa(u.Calls), strconv.Itoa(u.Failures),
			strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens),
			strconv.Itoa(u.AvgLatencyMs))
		calls += u.Calls
		failed += u.Failures
		in += u.InputTokens
		out += u.OutputTokens
	}
	t.Row("TOTAL", strconv.Itoa(calls), strconv.Itoa(failed), strconv.Itoa(in), strconv.Itoa(out), "")

	lipgloss.Fprintln(w, theme.Title.Render("Usage by purpose"))
	lipgloss.Fprintln(w, t)
}

func printModelCost(w io.Writer, usage []store.ModelUsage) {
	t := newTable("Model", "Calls", "Input", "Output", "Cost")
	var total float64
	var unpriced []string
	for _, u := range usage {
		cost := "?"
		if c := llm.LookupCost(u.Model); c != nil {
			usd := c.Cost(u.InputTokens, u.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		t.Row(truncate(u.Model, 32), strconv.Itoa(u.Calls),
			strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost)
	}

	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	t.Row(label, "", "", "", formatCost(total))

	lipgloss.Fprintln(w, theme.Title.Render("Estimated cost (USD)"))
	lipgloss.Fprintln(w, t)
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "No pricing for: %s\n", strings.Join(unpriced, ", "))
	}
}

func okMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
