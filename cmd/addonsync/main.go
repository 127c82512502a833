// Package main is the entry point for the addonsync CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jacksmith/addonsync/internal/cli"
	"github.com/jacksmith/addonsync/internal/config"
	"github.com/jacksmith/addonsync/internal/logging"
	"github.com/jacksmith/addonsync/internal/ops"
	"github.com/jacksmith/addonsync/internal/stremio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Red(cli.FormatError(err)))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "addonsync",
	Short: "addonsync - push an exported Stremio addon list to your account",
	Long: `addonsync uploads the addon collection from an exported Stremio settings
file and replaces the addon list of the account identified by an auth key.

The export must contain the addon list at addons.addons. Nothing is stored:
the auth key and the loaded addons only live for the duration of a command.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Global flags
var (
	configPath string
	apiURL     string
	verbose    bool
)

func init() {
	rootCmd.SetVersionTemplate("addonsync version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Stremio API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// loadSettings resolves the config file and global flags into a config
// and a logger.
func loadSettings() (*config.Config, *logrus.Logger, error) {
	path := configPath
	if path == "" {
		path = config.Path(".")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if verbose {
		level = logrus.DebugLevel
	}

	return cfg, logging.New(level, nil), nil
}

// newController wires a controller to the configured Stremio API.
func newController(cfg *config.Config, log *logrus.Logger) *ops.Controller {
	client := stremio.New(cfg.APIURL, stremio.WithLogger(log))
	return ops.NewController(client, log)
}

// commandContext returns the command's context, tolerating direct calls
// to run functions with a nil command.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
