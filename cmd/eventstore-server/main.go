package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cuemby/eventstore/pkg/config"
	"github.com/cuemby/eventstore/pkg/log"
	"github.com/cuemby/eventstore/pkg/metrics"
	"github.com/cuemby/eventstore/pkg/rpcserver"
	"github.com/cuemby/eventstore/pkg/streamstore"
	"github.com/cuemby/eventstore/pkg/subscribe"
	"github.com/cuemby/eventstore/pkg/topic"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "eventstore-server",
	Short:   "Topic-oriented event store backed by Redis Streams",
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("eventstore-server version %s (%s)\n", Version, Commit))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")

	cobra.OnInitialize(initLogging)

	serveCmd.Flags().Int("block-ms", subscribe.DefaultBlockMS, "Redis XREAD/XREADGROUP block window in milliseconds")
	serveCmd.Flags().String("health-addr", ":8081", "HTTP address for /health and /ready")
	serveCmd.Flags().String("metrics-addr", ":9090", "HTTP address for /metrics (empty disables it)")

	rootCmd.AddCommand(serveCmd)
}

func initLogging() {
	logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
	logJSON, _ := rootCmd.PersistentFlags().GetBool("log-json")

	log.Init(log.Config{
		Level:      log.Level(logLevel),
		JSONOutput: logJSON,
	})
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the event store gRPC server",
	RunE: func(cmd *cobra.Command, args []string) error {
		blockMS, _ := cmd.Flags().GetInt("block-ms")
		healthAddr, _ := cmd.Flags().GetString("health-addr")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		cfg, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		adapter, err := streamstore.NewRedisAdapter(cfg.RedisAddr())
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer adapter.Close()

		engine := topic.NewEngine(adapter)
		mux := subscribe.NewMultiplexer(engine, blockMS)

		collector := metrics.NewCollector(mux)
		collector.Start()
		defer collector.Stop()

		if metricsAddr != "" {
			go serveMetrics(metricsAddr)
		}

		srv := rpcserver.NewServer(engine, mux, collector, cfg.MaxWorkers)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Serve(cfg.ListenAddr(), healthAddr); err != nil {
				errCh <- err
			}
		}()

		log.WithComponent("main").Info().
			Str("listen", cfg.ListenAddr()).
			Str("redis", cfg.RedisAddr()).
			Msg("eventstore-server started")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sigCh:
			log.WithComponent("main").Info().Msg("shutting down")
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		}

		srv.Stop()
		return nil
	},
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithComponent("main").Error().Err(err).Msg("metrics server stopped unexpectedly")
	}
}
