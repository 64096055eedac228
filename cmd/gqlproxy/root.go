package main

import (
	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gqlproxy",
	Short: "gqlproxy generates and runs declarative GraphQL clients",
	Long: `gqlproxy reads a config describing the methods of a GraphQL client, their queries and variables.
It generates a Go client for them, or runs one of them against the configured endpoint.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "gqlproxy.yml", "config is the path to the gqlproxy config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose enables debug logging")
}

func newLogger() (abstractlogger.Logger, error) {
	cfg := zap.NewProductionConfig()
	level := abstractlogger.InfoLevel
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		level = abstractlogger.DebugLevel
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return abstractlogger.NewZapLogger(logger, level), nil
}
