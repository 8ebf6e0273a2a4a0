package main

import (
	"log/slog"
	"os"

	"github.com/JonMunkholm/griptip/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	if err := cli.Execute(); err != nil {
		slog.Error("griptip failed", "error", err)
		os.Exit(1)
	}
}
