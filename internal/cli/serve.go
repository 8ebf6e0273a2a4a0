package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/griptip/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversions over HTTP",
	Long: `Starts the HTTP server:

  GET  /healthz        liveness probe
  GET  /api/products   the configured sheet, converted
  POST /api/convert    convert the CSV sent as body or multipart field "file"
  GET  /metrics        prometheus metrics

Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(cfg, metrics)
	return serveUntilDone(ctx, server)
}

// serveUntilDone runs server until it fails or ctx is cancelled, then shuts
// it down within the configured timeout.
func serveUntilDone(ctx context.Context, server *web.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()
	slog.Info("server starting", "addr", cfg.Server.Addr(), "input", cfg.Pipeline.Input)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
