package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/coder/quartz"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - plays one game on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	console := terminal.NewConsole(logger, in, out, !conf.NoColor)
	gameLoop := usecase.NewGameLoop(logger, quartz.NewReal(), console, console)

	console.ShowGreeting()

	// the loop blocks on input, so it runs aside to let a signal end the process
	gameErrCh := make(chan error, 1)
	go func() {
		_, err := gameLoop.Run(ctx)
		gameErrCh <- err
	}()

	select {
	case err := <-gameErrCh:
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("Input closed before the game ended")
			return nil
		}

		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
