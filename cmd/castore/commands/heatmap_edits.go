package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// NewHeatmapEditsCommand creates the heatmap-edits command group.
func NewHeatmapEditsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "heatmap-edits",
		Aliases: []string{"heatmap-edit", "edits"},
		Short:   "Manage heatmap edits",
		Long:    "Find, create, update and delete per-user heatmap edits",
	}

	cmd.AddCommand(newHeatmapEditsFindCommand())
	cmd.AddCommand(newHeatmapEditsAddCommand())
	cmd.AddCommand(newHeatmapEditsUpdateCommand())
	cmd.AddCommand(newHeatmapEditsDeleteCommand())

	return cmd
}

// heatmapEditFlags holds the flags shared by the heatmap edit commands.
type heatmapEditFlags struct {
	user  string
	slide string
	name  string
}

func (f *heatmapEditFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.user, "user", "", "user id")
	cmd.Flags().StringVar(&f.slide, "slide", "", "slide id")
	cmd.Flags().StringVar(&f.name, "name", "", "heatmap name")
}

func newHeatmapEditsFindCommand() *cobra.Command {
	var flags heatmapEditFlags

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find heatmap edits",
		Long:  "Find heatmap edits by user, slide and name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.HeatmapEdits().Find(ctx, flags.user, flags.slide, flags.name)
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newHeatmapEditsAddCommand() *cobra.Command {
	var data, file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a heatmap edit",
		Long:  "Create a heatmap edit from a JSON or YAML record",
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := recordCall(cmd, data, file, func(ctx context.Context, store castore.Store, record castore.Record) (*castore.Result, error) {
				return store.HeatmapEdits().Add(ctx, record)
			})
			if err != nil {
				return err
			}

			return runStoreCall(cmd, call)
		},
	}

	addRecordFlags(cmd, &data, &file)

	return cmd
}

func heatmapEditUpdateCall(flags heatmapEditFlags, data string) storeCall {
	params := castore.HeatmapEditParams{
		User:  flags.user,
		Slide: flags.slide,
		Name:  flags.name,
		Data:  jsonFlag(data),
	}

	return func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		return store.HeatmapEdits().Update(ctx, params)
	}
}

func newHeatmapEditsUpdateCommand() *cobra.Command {
	var (
		flags heatmapEditFlags
		data  string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a heatmap edit",
		Long:  "Replace the edit data of a heatmap edit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, heatmapEditUpdateCall(flags, data))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&data, "data", "d", "", "edit data as JSON")

	return cmd
}

func newHeatmapEditsDeleteCommand() *cobra.Command {
	var flags heatmapEditFlags

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a heatmap edit",
		Long:  "Delete the heatmap edit matching user, slide and name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.HeatmapEdits().Delete(ctx, flags.user, flags.slide, flags.name)
			})
		},
	}

	flags.register(cmd)

	return cmd
}
