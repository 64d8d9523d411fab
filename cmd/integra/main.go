package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanamz/integra/pkg/catalog"
	"github.com/germanamz/integra/pkg/config"
	"github.com/germanamz/integra/pkg/generation"
	"github.com/germanamz/integra/pkg/providers/huggingface"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr)
	cancel()

	os.Exit(code)
}

// run loads configuration, wires the generator and runs the demo. It returns
// the process exit code.
func run(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrMissingAPIKey) {
		fmt.Fprintf(stderr, "Error: %s is not set in the environment variables.\n", config.APIKeyEnv)
		fmt.Fprintln(stderr, "Please copy .env.example to .env and add your Hugging Face API key.")
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	level, _ := cfg.SlogLevel() // validated by config.Load
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	d := &demo{
		out:      stdout,
		catalog:  catalog.Default(),
		gen:      newGenerator(cfg, log),
		md:       newMarkdown(ruleWidth * 2),
		examples: examples,
	}

	if err := d.run(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// newGenerator builds the Inference API client wrapped with logging and
// panic recovery.
func newGenerator(cfg config.Config, log *slog.Logger) generation.Generator {
	adapter := huggingface.New(cfg.BaseURL, cfg.APIKey, cfg.DefaultModel)
	adapter.Timeout = cfg.Timeout

	return generation.Chain(adapter,
		generation.DefaultEndpoint(cfg.DefaultModel),
		generation.Logger(log),
		generation.Recovery(),
	)
}
