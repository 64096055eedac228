package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"

	"github.com/infiotinc/gqlproxy/client"
	"github.com/infiotinc/gqlproxy/config"
)

var execVars []string

var execCmd = &cobra.Command{
	Use:     "exec METHOD",
	Short:   "Runs one configured operation and prints the raw JSON result",
	Example: `gqlproxy exec -c gqlproxy.yml WithVars --var episode=JEDI --var id=123`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}

		return execOperation(context.Background(), cfg, log, args[0], execVars, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().StringArrayVar(&execVars, "var", nil, "var sets a variable as name=value, values are parsed as JSON when possible (repeatable)")
}

func execOperation(ctx context.Context, cfg *config.Config, log abstractlogger.Logger, method string, vars []string, out io.Writer) error {
	op := cfg.Operation(method)
	if op == nil {
		return fmt.Errorf("unknown method %s", method)
	}

	args, err := callArgs(op, vars)
	if err != nil {
		return err
	}

	c, err := cfg.NewClient(log)
	if err != nil {
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if op.Returns == "" {
		_, err := client.Submit[client.Unit](ctx, c, op.Method, args...).Await(ctx)
		return err
	}

	res, err := client.Submit[json.RawMessage](ctx, c, op.Method, args...).Await(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(res))

	return err
}

// callArgs orders vars by the operation bindings, missing ones are sent as null
func callArgs(op *config.OperationConfig, vars []string) ([]interface{}, error) {
	values := make(map[string]interface{}, len(vars))
	for _, v := range vars {
		name, raw, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid var %q, expected name=value", v)
		}

		var value interface{}
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		values[name] = value
	}

	args := make([]interface{}, len(op.Vars))
	for i, name := range op.Vars {
		args[i] = values[name]
	}

	return args, nil
}
