package main

import (
	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"

	"github.com/infiotinc/gqlproxy/clientgen"
	"github.com/infiotinc/gqlproxy/config"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Generates the Go client described by the config",
	Example: `gqlproxy generate -c ./example/starwars/gqlproxy.yml`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}

		if err := clientgen.GenerateFile(cfg); err != nil {
			return err
		}

		log.Info("client generated",
			abstractlogger.String("output", cfg.Generate.Output),
			abstractlogger.Int("operations", len(cfg.Operations)),
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
