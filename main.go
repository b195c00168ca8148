package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	app "github.com/rocketscienceinc/tictactoe-cli/internal"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

var version = "dev"

type CLI struct {
	Config  string           `short:"c" help:"Path to the YAML config file." default:"config.yml" type:"path"`
	Version kong.VersionFlag `help:"Print the version and exit."`
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("tictactoe"),
		kong.Description("Two-player tic-tac-toe in the terminal."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	conf := config.MustLoad(cli.Config)

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger. Records go to the log file so they never interleave with the board.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var formatter log.Formatter
	switch conf.LogFormat {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}

	var (
		out     io.Writer = io.Discard
		closeFn           = func() {}
	)

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeFn = func() {
			if err := file.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
			}
		}
	}

	handler := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "TICTACTOE",
		Formatter:       formatter,
	})

	return slog.New(handler), closeFn
}
