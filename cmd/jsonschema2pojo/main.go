package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/erraggy/jsonschema2pojo/cmd/jsonschema2pojo/commands"
	"github.com/erraggy/jsonschema2pojo/internal/mcpserver"
)

func main() {
	loadDotEnv(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) > 1 && os.Args[1] == "mcp" {
		// stdout carries the protocol; logs go to stderr.
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			stop()
			os.Exit(1)
		}
		return
	}

	args := commands.NewArguments()
	args.Exit = func(code int) {
		stop()
		os.Exit(code)
	}
	commands.Run(ctx, args, os.Args[1:])
}

// loadDotEnv reads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", path, err)
	}
}
