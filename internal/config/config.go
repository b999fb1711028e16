// Package config loads mathduel settings from MATHDUEL_* environment
// variables. Command-line flags override individual fields afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/mathduel/internal/llm"
)

// Prefix is prepended to every variable name.
const Prefix = "MATHDUEL_"

// Config is the full application configuration.
type Config struct {
	Client ClientConfig
	Server ServerConfig

	// DBPath is the SQLite event log. Empty resolves to the XDG data dir.
	DBPath string `env:"DB"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	LLM llm.Config `envPrefix:"LLM_"`
}

// ClientConfig configures the TUI and the solve command.
type ClientConfig struct {
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8000"`

	// LogFile receives client logs. Empty resolves to the XDG state dir.
	LogFile string `env:"LOG_FILE"`

	// RequestTimeout bounds one solve request. Zero waits for the server.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0s"`
}

// ServerConfig configures the solve backend.
type ServerConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8000"`
	RequestTimeout  time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OptimizedProgram is the saved program file for the optimized
	// variant. A missing file leaves the variant unloaded.
	OptimizedProgram string `env:"OPTIMIZED_PROGRAM" envDefault:"math_model.json"`
}

// Load parses the process environment.
func Load() (*Config, error) {
	return load(env.Options{Prefix: Prefix}, os.Getenv)
}

// LoadFrom parses vars instead of the process environment. Keys include
// the MATHDUEL_ prefix.
func LoadFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Prefix: Prefix, Environment: vars}, func(k string) string { return vars[k] })
}

func load(opts env.Options, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.LLM.DiscoverFrom(getenv)
	return cfg, nil
}
