package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tictactoe/internal/config"
	"tictactoe/internal/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	term := terminal.New(logger, os.Stdin, os.Stdout, conf.Color)

	final, err := term.Run(ctx)
	if err != nil {
		return fmt.Errorf("interactive game failed: %w", err)
	}

	log.Info("Game finished", "outcome", final.Outcome().String())

	return nil
}
