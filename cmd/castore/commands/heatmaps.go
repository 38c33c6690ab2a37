package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// NewHeatmapsCommand creates the heatmaps command group.
func NewHeatmapsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "heatmaps",
		Aliases: []string{"heatmap", "hm"},
		Short:   "Manage heatmaps",
		Long:    "Find, fetch, create, delete and tune slide heatmaps",
	}

	cmd.AddCommand(newHeatmapsFindCommand())
	cmd.AddCommand(newHeatmapsTypesCommand())
	cmd.AddCommand(newHeatmapsGetCommand())
	cmd.AddCommand(newHeatmapsAddCommand())
	cmd.AddCommand(newHeatmapsDeleteCommand())
	cmd.AddCommand(newHeatmapsUpdateFieldsCommand())

	return cmd
}

func newHeatmapsFindCommand() *cobra.Command {
	var slide, name string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find heatmaps",
		Long:  "Find heatmaps by slide and name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Heatmaps().Find(ctx, slide, name)
			})
		},
	}

	cmd.Flags().StringVar(&slide, "slide", "", "slide id")
	cmd.Flags().StringVar(&name, "name", "", "heatmap name")

	return cmd
}

func newHeatmapsTypesCommand() *cobra.Command {
	var slide, name string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List heatmap types",
		Long:  "List the heatmap types available for a slide",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Heatmaps().FindTypes(ctx, slide, name)
			})
		},
	}

	cmd.Flags().StringVar(&slide, "slide", "", "slide id")
	cmd.Flags().StringVar(&name, "name", "", "heatmap name")

	return cmd
}

func newHeatmapsGetCommand() *cobra.Command {
	var slide, name string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a heatmap",
		Long:  "Display the heatmap with the given slide and name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Heatmaps().Get(ctx, slide, name)
			})
		},
	}

	cmd.Flags().StringVar(&slide, "slide", "", "slide id")
	cmd.Flags().StringVar(&name, "name", "", "heatmap name")

	return cmd
}

func newHeatmapsAddCommand() *cobra.Command {
	var data, file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a heatmap",
		Long:  "Create a heatmap from a JSON or YAML record",
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := recordCall(cmd, data, file, func(ctx context.Context, store castore.Store, record castore.Record) (*castore.Result, error) {
				return store.Heatmaps().Add(ctx, record)
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

func newHeatmapsDeleteCommand() *cobra.Command {
	var slide string

	cmd := &cobra.Command{
		Use:   "delete HEATMAP_ID",
		Short: "Delete a heatmap",
		Long:  "Delete a heatmap from a slide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Heatmaps().Delete(ctx, args[0], slide)
			})
		},
	}

	cmd.Flags().StringVar(&slide, "slide", "", "slide id")

	return cmd
}

func heatmapFieldsCall(slide, name, fields, setting string) storeCall {
	params := castore.HeatmapFieldsParams{
		Slide:   slide,
		Name:    name,
		Fields:  jsonFlag(fields),
		Setting: jsonFlag(setting),
	}

	return func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		return store.Heatmaps().UpdateFields(ctx, params)
	}
}

func newHeatmapsUpdateFieldsCommand() *cobra.Command {
	var slide, name, fields, setting string

	cmd := &cobra.Command{
		Use:   "update-fields",
		Short: "Update heatmap thresholds",
		Long:  "Update the threshold fields and display setting of a heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, heatmapFieldsCall(slide, name, fields, setting))
		},
	}

	cmd.Flags().StringVar(&slide, "slide", "", "slide id")
	cmd.Flags().StringVar(&name, "name", "", "heatmap name")
	cmd.Flags().StringVar(&fields, "fields", "", "threshold fields as JSON")
	cmd.Flags().StringVar(&setting, "setting", "", "display setting as JSON")

	return cmd
}
