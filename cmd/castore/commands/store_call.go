package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// storeCall is a single store operation bound to its command-line arguments.
type storeCall func(ctx context.Context, store castore.Store) (*castore.Result, error)

// runStoreCall builds the configured store, runs call and writes the result.
func runStoreCall(cmd *cobra.Command, call storeCall) error {
	store, err := CreateStore()
	if err != nil {
		return err
	}

	return executeStoreCall(commandContext(cmd), cmd.OutOrStdout(), store, call, OutputFormat())
}

func executeStoreCall(ctx context.Context, w io.Writer, store castore.Store, call storeCall, format string) error {
	res, err := call(ctx, store)
	if err != nil {
		return err
	}

	return outputResult(w, res, format)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// recordCall reads a record from the command's input and hands it to add.
func recordCall(cmd *cobra.Command, data, file string, add func(ctx context.Context, store castore.Store, record castore.Record) (*castore.Result, error)) (storeCall, error) {
	raw, err := readInput(cmd.InOrStdin(), data, file)
	if err != nil {
		return nil, err
	}

	record, err := parseRecord(raw)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		return add(ctx, store, record)
	}, nil
}
