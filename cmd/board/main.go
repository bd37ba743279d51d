package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"todoboard/client"
	"todoboard/config"
	"todoboard/internal/cli"
	"todoboard/shared/logger"
)

const (
	logLevelEnv            = "BOARD_LOG_LEVEL"
	startupLogLevelDefault = "error"
)

// startupLogLevel is the level used while configuration loads, before BOARD_LOG_LEVEL
// from a .env file can be known. A missing .env is not worth a warning on every call.
func startupLogLevel(lookup func(string) (string, bool)) string {
	if level, ok := lookup(logLevelEnv); ok && level != "" {
		return level
	}

	return startupLogLevelDefault
}

func main() {
	logger.InitLoggerWithWriter(os.Stderr)
	logger.SetLogLevelFromString(startupLogLevel(os.LookupEnv))

	cfg := config.Get()

	logger.SetLogLevelFromString(cfg.Board.LogLevel)

	baseURL := flag.String("api", cfg.Board.BaseURL, "board collection URL")
	username := flag.String("u", cfg.Board.Username, "display name")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	runner := cli.New(client.New(*baseURL), *username, os.Stdout, os.Stderr)
	code := runner.Run(ctx, flag.Args())

	stop()
	os.Exit(code)
}
