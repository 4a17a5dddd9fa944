package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect coach LLM calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := bootstrap(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		events, err := d.store.QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		printLLMEvents(cmd.OutOrStdout(), events)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM token usage by provider and model",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		events, err := d.store.QueryLLMEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		printLLMUsage(cmd.OutOrStdout(), events)
		return nil
	},
}

func printLLMEvents(w io.Writer, events []store.LLMRequestEventRecord) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No LLM events found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
		"ID", "Timestamp", "Provider", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗ " + e.ErrorMessage
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Provider,
			truncate(e.Model, 28),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			ok,
		)
	}
}

type llmUsage struct {
	key          string
	calls        int
	failures     int
	inputTokens  int
	outputTokens int
	latencyMs    int64
}

// aggregateLLMUsage groups events by provider/model, most used first.
func aggregateLLMUsage(events []store.LLMRequestEventRecord) []llmUsage {
	byKey := make(map[string]*llmUsage)
	for _, e := range events {
		key := e.Provider + "/" + e.Model
		u, ok := byKey[key]
		if !ok {
			u = &llmUsage{key: key}
			byKey[key] = u
		}
		u.calls++
		if !e.Success {
			u.failures++
		}
		u.inputTokens += e.InputTokens
		u.outputTokens += e.OutputTokens
		u.latencyMs += e.LatencyMs
	}

	out := make([]llmUsage, 0, len(byKey))
	for _, u := range byKey {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].calls != out[j].calls {
			return out[i].calls > out[j].calls
		}
		return out[i].key < out[j].key
	})
	return out
}

func printLLMUsage(w io.Writer, events []store.LLMRequestEventRecord) {
	usage := aggregateLLMUsage(events)
	if len(usage) == 0 {
		fmt.Fprintln(w, "No LLM usage recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-36s  %6s  %6s  %10s  %10s  %8s\n",
		"Provider/Model", "Calls", "Failed", "Input", "Output", "Avg Ms")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	var calls, in, out int
	for _, u := range usage {
		fmt.Fprintf(w, "%-36s  %6d  %6d  %10d  %10d  %8d\n",
			truncate(u.key, 36), u.calls, u.failures, u.inputTokens, u.outputTokens, u.latencyMs/int64(u.calls))
		calls += u.calls
		in += u.inputTokens
		out += u.outputTokens
	}
	fmt.Fprintln(w, strings.Repeat("─", 86))
	fmt.Fprintf(w, "%-36s  %6d  %6s  %10d  %10d\n", "TOTAL", calls, "", in, out)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
