package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// NewCollectionCommand creates the generic collection command group.
func NewCollectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		Aliases: []string{"col"},
		Short:   "Write to any collection",
		Long: `Post, update or delete records in any store collection.

Query parameters are given as KEY=VALUE arguments after the collection type:

  castore collection update Mark id=5f1 --data '{"properties":{"note":"ok"}}'
  castore collection delete Slide id=5f2`,
	}

	cmd.AddCommand(newCollectionWriteCommand("post", "Post a record", false))
	cmd.AddCommand(newCollectionWriteCommand("update", "Update records", true))
	cmd.AddCommand(newCollectionDeleteCommand())

	return cmd
}

func collectionWriteCall(update bool, collection string, query *castore.Query, record castore.Record) storeCall {
	return func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		if update {
			return store.Update(ctx, collection, query, record)
		}

		return store.Post(ctx, collection, query, record)
	}
}

func newCollectionWriteCommand(action, short string, update bool) *cobra.Command {
	var data, file string

	cmd := &cobra.Command{
		Use:   action + " TYPE [KEY=VALUE...]",
		Short: short,
		Long:  short + " in the collection TYPE with a JSON or YAML body",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseQueryArgs(args[1:])
			if err != nil {
				return err
			}

			raw, err := readInput(cmd.InOrStdin(), data, file)
			if err != nil {
				return err
			}

			record, err := parseRecord(raw)
			if err != nil {
				return err
			}

			return runStoreCall(cmd, collectionWriteCall(update, args[0], query, record))
		},
	}

	addRecordFlags(cmd, &data, &file)

	return cmd
}

func collectionDeleteCall(collection string, query *castore.Query) storeCall {
	return func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		return store.Delete(ctx, collection, query)
	}
}

func newCollectionDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TYPE [KEY=VALUE...]",
		Short: "Delete records",
		Long:  "Delete records matching the query from the collection TYPE",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseQueryArgs(args[1:])
			if err != nil {
				return err
			}

			return runStoreCall(cmd, collectionDeleteCall(args[0], query))
		},
	}
}
