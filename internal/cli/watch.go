package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/griptip/internal/observability"
	"github.com/JonMunkholm/griptip/internal/watch"
)

var watchMetricsAddr string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Convert the sheet whenever it changes",
	Long: `Converts once, then converts again every time the input sheet is
written, created or renamed. Failed conversions are logged and the previous
output is left in place.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchMetricsAddr, "metrics-addr", "", "serve /metrics on this address while watching")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchMetricsAddr != "" {
		shutdown := serveMetrics(watchMetricsAddr)
		defer shutdown()
	}

	rebuild := func(ctx context.Context) error {
		stats, err := convertOnce(ctx, observability.SourceWatch)
		if err != nil {
			return err
		}
		printSummary(cmd, stats)
		return nil
	}

	if err := rebuild(ctx); err != nil {
		slog.Error("initial conversion failed", "error", err)
	}

	return watch.New(cfg.Pipeline.Input, cfg.Watch.Debounce, rebuild).Run(ctx)
}

// metricsRouter serves the metrics registry at /metrics.
func metricsRouter() http.Handler {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	return router
}

// serveMetrics exposes the metrics registry on addr in the background.
func serveMetrics(addr string) func() {
	srv := &http.Server{Addr: addr, Handler: metricsRouter(), ReadHeaderTimeout: cfg.Server.ReadTimeout}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	slog.Info("metrics listening", "addr", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		srv.Shutdown(ctx)
	}
}
