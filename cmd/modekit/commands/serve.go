package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/modekit/modekit/internal/config"
	"github.com/modekit/modekit/internal/logging"
	"github.com/modekit/modekit/internal/mode"
	"github.com/modekit/modekit/internal/server"
	"github.com/modekit/modekit/internal/watch"
)

var (
	servePort     int
	serveHostname string
	serveNoWatch  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mode registry over HTTP",
	Long: `Expose the registry as an HTTP API for agent runtimes.

The mode directories are watched for changes; edits to a mode file reload
the whole registry and notify SSE subscribers on /event.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHostname, "hostname", "", "Hostname to listen on")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "Disable the mode file watcher")
}

func runServe(cmd *cobra.Command, args []string) error {
	registry, issues, cfg, workDir, err := setup()
	if err != nil {
		return err
	}

	logging.Info().Str("version", Version).Str("directory", workDir).Msg("starting modekit server")

	serverConfig := server.DefaultConfig()
	if cfg.Server.Port != 0 {
		serverConfig.Port = cfg.Server.Port
	}
	if servePort != 0 {
		serverConfig.Port = servePort
	}
	if cfg.Server.Hostname != "" {
		serverConfig.Hostname = cfg.Server.Hostname
	}
	if serveHostname != "" {
		serverConfig.Hostname = serveHostname
	}
	if cfg.Server.EnableCORS != nil {
		serverConfig.EnableCORS = *cfg.Server.EnableCORS
	}

	srv := server.New(serverConfig, cfg, registry, issues)

	// Watch mode directories unless disabled
	if cfg.WatchEnabled() && !serveNoWatch {
		loader := mode.NewLoader(config.GlobalModesDir(), config.ProjectModesDir(workDir))
		watcher, err := watch.NewWatcher(loader, registry, config.GlobalModesDir(), config.ProjectModesDir(workDir))
		if err != nil {
			logging.Warn().Err(err).Msg("mode watcher unavailable")
		} else if watcher != nil {
			watcher.Start()
			defer watcher.Stop()
		}
	}

	go func() {
		logging.Info().
			Str("hostname", serverConfig.Hostname).
			Int("port", serverConfig.Port).
			Int("modes", registry.Count()).
			Msg("server listening")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logging.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("server shutdown error")
	}

	logging.Info().Msg("server stopped")
	return nil
}
