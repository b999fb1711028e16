package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathduel/internal/app"
	"github.com/abhisek/mathduel/internal/config"
	"github.com/abhisek/mathduel/internal/logging"
	"github.com/abhisek/mathduel/internal/solver"
)

// runApp builds the solve client and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Client.LogFile = v
	}

	logger, closer := clientLogger(cfg)
	defer closer.Close()

	client, err := newSolverClient(cfg, logger)
	if err != nil {
		return err
	}

	raw, _ := cmd.Flags().GetBool("raw")
	return app.Run(app.Options{
		Solver: client,
		Status: client,
		Server: client.BaseURL(),
		Logger: logger,
		Raw:    raw,
	})
}

func newSolverClient(cfg *config.Config, logger zerolog.Logger) (*solver.Client, error) {
	opts := []solver.Option{solver.WithLogger(logger)}
	if cfg.Client.RequestTimeout > 0 {
		opts = append(opts, solver.WithHTTPClient(&http.Client{Timeout: cfg.Client.RequestTimeout}))
	}
	client, err := solver.NewClient(cfg.Client.ServerURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("solve server: %w", err)
	}
	return client, nil
}

// clientLogger logs to the client log file, since the terminal belongs to
// the UI. Logging is disabled when the file cannot be opened.
func clientLogger(cfg *config.Config) (zerolog.Logger, io.Closer) {
	path := cfg.Client.LogFile
	if path == "" {
		p, err := logging.DefaultLogPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Logging disabled:", err)
			return zerolog.Nop(), io.NopCloser(nil)
		}
		path = p
	}

	f, err := logging.OpenFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return zerolog.Nop(), io.NopCloser(nil)
	}

	logger, err := logging.New(f, cfg.LogLevel, "client")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		f.Close()
		return zerolog.Nop(), io.NopCloser(nil)
	}
	return logger, f
}
