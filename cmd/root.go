package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathduel/internal/config"
	"github.com/abhisek/mathduel/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathduel",
	Short: "Compare a base and an optimized math model side by side",
	Long: "Mathduel sends one math problem to two model variants, a zero-shot base\n" +
		"program and an optimized few-shot program, and shows both answers side by side.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides MATHDUEL_DB)")
	rootCmd.PersistentFlags().String("server", "", "Solve server URL (overrides MATHDUEL_SERVER_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().String("log-file", "", "Client log file (default $XDG_STATE_HOME/mathduel/mathduel.log)")
	rootCmd.Flags().Bool("raw", false, "Show model output without typesetting LaTeX")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("server"); v != "" {
		cfg.Client.ServerURL = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}
	return cfg, nil
}

// openStore opens the event log selected by --db.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// resolveDBPath returns the database path using --db or MATHDUEL_DB, then
// the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}
