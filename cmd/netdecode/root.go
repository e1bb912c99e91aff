// Package main implements netdecode, a small multi-command CLI around the
// decoder core: decode a single captured packet, batch-decode a directory
// against one shared session, or list the static class/property registry.
package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/replicore/netdecode/internal/config"
	"github.com/replicore/netdecode/internal/logging"
	"github.com/replicore/netdecode/internal/metrics"
)

var (
	appName    = "netdecode"
	appVersion = "dev" // injected at build time via -ldflags

	logLevel     string
	metricsAddr  string
	maxClassSize int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     appName,
		Short:   "Parse and re-serialize replicated-object game packets",
		Version: appVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts := config.LoadOptions{LogLevel: logLevel, MetricsAddr: metricsAddr}
			if maxClassSize > 0 {
				opts.MaxClassSize = maxClassSize
			}
			cfg, err := config.LoadWithOverrides(opts)
			if err != nil {
				return err
			}
			logging.SetLevelFromString(cfg.Logging.Level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "address to expose Prometheus metrics on (e.g. :9100); empty disables it")
	root.PersistentFlags().IntVar(&maxClassSize, "max-class-size", 0, "value for the decoder.maxClassSize setting (0 = use default); the decoder does not read it")

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newDescribeSchemaCmd())
	return root
}

// startMetricsServer starts a background Prometheus exposition endpoint
// when the loaded config's metrics address is set, returning a recorder
// wired to it. Returns a nil recorder when metrics are disabled, which
// every decode call treats as "recording disabled" (SPEC_FULL.md §10.5).
func startMetricsServer(addr string) *metrics.Recorder {
	if addr == "" {
		return nil
	}

	rec := metrics.New(nil)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		logging.Info("metrics endpoint listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logging.Error("metrics endpoint stopped: %v", err)
		}
	}()
	return rec
}
