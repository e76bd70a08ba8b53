package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eadegbola/profiler/internal/config"
	"github.com/eadegbola/profiler/internal/dashboard"
	"github.com/eadegbola/profiler/internal/server"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the profile page with live publication search",
	Long:  `Starts an HTTP server that renders the profile page on every request and re-renders the publications section over a websocket as the keyword changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, renderer, err := newRenderer()
		if err != nil {
			return err
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: cfg.Server.AllowAll || serveAllowAll,
		}, logger)

		dash := dashboard.New(renderer, logger, srv.CheckOrigin)
		dash.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown", zap.Error(err))
			}
		}()

		fmt.Fprintf(os.Stderr, "profiler %s serving http://localhost:%d\n", Version, port)
		logger.Info("serving profile",
			zap.String("config", cfgFile),
			zap.String("photo", cfg.Photo),
			zap.String("publications", cfg.Publications.File),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}
