// Package main is the entry point for the mdtask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"mdtask/internal/backend/openrouter"
	"mdtask/internal/cli"
	"mdtask/internal/commands"
	"mdtask/internal/config"
	"mdtask/internal/improve"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Load .env before any environment reads
	_ = godotenv.Load()

	// Create improver factory
	factory := func(ctx context.Context, cfg *config.Config) (improve.Improver, error) {
		return openrouter.New(cfg)
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
