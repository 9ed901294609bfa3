package main

import (
	"log/slog"
	"os"

	"github.com/dshills/veil/internal/cli"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	os.Exit(cli.Run())
}
