package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jacksmith/addonsync/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload-and-sync form on a local address",
	Long: `Start a local web page with the auth key field, the export file picker
and the sync button.

The page keeps one session in memory for as long as the server runs.
Bind it to a loopback address: anyone who can reach it can push addons
with the auth key last entered.

Examples:
  addonsync serve
  addonsync serve --listen 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveListen string

// shutdownTimeout bounds how long in-flight requests get on shutdown.
const shutdownTimeout = 5 * time.Second

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "address to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}

	addr := serveListen
	if addr == "" {
		addr = cfg.Listen
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           web.NewHandler(newController(cfg, log), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("Serving addonsync on http://%s\n", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.WithField("signal", sig.String()).Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		fmt.Println("Server stopped")
		return nil
	}
}
