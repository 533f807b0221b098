// Package main implements the entry point for the content generation API
// server, which turns topic/content-type/tone requests into LLM prompts and
// returns the generated text.
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
)

// main is the entry point for the contentgen-api server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// run loads configuration, sets up logging, wires the application, and
// serves until ctx is canceled.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
