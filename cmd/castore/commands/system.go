package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// NewLogsCommand creates the logs command group.
func NewLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs",
		Aliases: []string{"log"},
		Short:   "Write store logs",
		Long:    "Post client log records to the store",
	}

	var data, file string

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a log record",
		Long:  "Post a log record from JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := recordCall(cmd, data, file, func(ctx context.Context, store castore.Store, record castore.Record) (*castore.Result, error) {
				return store.Logs().Add(ctx, record)
			})
			if err != nil {
				return err
			}

			return runStoreCall(cmd, call)
		},
	}
	addRecordFlags(add, &data, &file)

	cmd.AddCommand(add)

	return cmd
}

// NewConfigurationsCommand creates the configurations command group.
func NewConfigurationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "configurations",
		Aliases: []string{"configuration", "cfg"},
		Short:   "Read viewer configurations",
		Long:    "Fetch named viewer configurations stored on the server",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Get a configuration",
		Long:  "Display the configuration stored under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Configurations().GetByName(ctx, args[0])
			})
		},
	})

	return cmd
}
