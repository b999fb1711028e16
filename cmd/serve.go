package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathduel/internal/llm"
	"github.com/abhisek/mathduel/internal/logging"
	"github.com/abhisek/mathduel/internal/program"
	"github.com/abhisek/mathduel/internal/server"
	"github.com/abhisek/mathduel/internal/solver"
	"github.com/abhisek/mathduel/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the solve server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("addr"); v != "" {
			cfg.Server.Addr = v
		}
		if v, _ := cmd.Flags().GetString("program"); v != "" {
			cfg.Server.OptimizedProgram = v
		}

		logger, err := logging.ForFile(os.Stderr, cfg.LogLevel, "server")
		if err != nil {
			return err
		}
		if err := cfg.LLM.Validate(); err != nil {
			return err
		}

		dbPath := cfg.DBPath
		if dbPath == "" {
			if dbPath, err = store.DefaultDBPath(); err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), logger)
		if err != nil {
			return err
		}

		programs := map[solver.Variant]*program.Program{
			solver.VariantBase: program.Base(),
		}
		optimized, err := program.Load(cfg.Server.OptimizedProgram)
		switch {
		case err == nil:
			programs[solver.VariantOptimized] = optimized
			logger.Info().
				Str("path", cfg.Server.OptimizedProgram).
				Int("demos", len(optimized.Demos)).
				Msg("optimized program loaded")
		case errors.Is(err, fs.ErrNotExist):
			logger.Warn().Str("path", cfg.Server.OptimizedProgram).Msg("optimized program not found")
		default:
			logger.Error().Err(err).Str("path", cfg.Server.OptimizedProgram).Msg("optimized program not loaded")
		}

		srv, err := server.New(server.Options{
			Provider: provider,
			Programs: programs,
			Settings: program.Settings{
				MaxTokens:   cfg.LLM.MaxTokens,
				Temperature: cfg.LLM.Temperature,
			},
			Logger:         logger,
			RequestTimeout: cfg.Server.RequestTimeout,
		})
		if err != nil {
			return err
		}

		logger.Info().
			Str("provider", cfg.LLM.Provider).
			Str("model", provider.ModelID()).
			Str("db", dbPath).
			Msg("starting")
		return srv.Run(ctx, cfg.Server.Addr, cfg.Server.ShutdownTimeout)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MATHDUEL_ADDR)")
	serveCmd.Flags().String("program", "", "Optimized program file (overrides MATHDUEL_OPTIMIZED_PROGRAM)")
}
