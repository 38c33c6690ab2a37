package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// NewMarksCommand creates the marks command group.
func NewMarksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "marks",
		Aliases: []string{"mark", "m"},
		Short:   "Manage marks",
		Long:    "Find, fetch, create and delete slide annotation marks",
	}

	cmd.AddCommand(newMarksFindCommand())
	cmd.AddCommand(newMarksFindSpatialCommand())
	cmd.AddCommand(newMarksGetCommand())
	cmd.AddCommand(newMarksGetManyCommand())
	cmd.AddCommand(newMarksAddCommand())
	cmd.AddCommand(newMarksDeleteCommand())
	cmd.AddCommand(newMarksTypesCommand())

	return cmd
}

func markFindCall(params castore.MarkFindParams) storeCall {
	return func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		return store.Marks().Find(ctx, params)
	}
}

func newMarksFindCommand() *cobra.Command {
	var params castore.MarkFindParams

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find marks",
		Long:  "Find marks by slide, name, source, footprint and bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, markFindCall(params))
		},
	}

	cmd.Flags().StringVar(&params.Slide, "slide", "", "slide id")
	cmd.Flags().StringVar(&params.Name, "name", "", "analysis name")
	cmd.Flags().Float64Var(&params.Footprint, "footprint", 0, "minimum footprint")
	cmd.Flags().StringVar(&params.Source, "source", "", "mark source (human, computer)")
	cmd.Flags().Float64Var(&params.X0, "x0", 0, "left bound")
	cmd.Flags().Float64Var(&params.X1, "x1", 0, "right bound")
	cmd.Flags().Float64Var(&params.Y0, "y0", 0, "top bound")
	cmd.Flags().Float64Var(&params.Y1, "y1", 0, "bottom bound")

	return cmd
}

func newMarksFindSpatialCommand() *cobra.Command {
	var params castore.MarkSpatialParams

	cmd := &cobra.Command{
		Use:   "find-spatial",
		Short: "Find marks in a bounding box",
		Long:  "Find marks intersecting a bounding box; all four bounds are always sent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Marks().FindSpatial(ctx, params)
			})
		},
	}

	cmd.Flags().Float64Var(&params.X0, "x0", 0, "left bound")
	cmd.Flags().Float64Var(&params.Y0, "y0", 0, "top bound")
	cmd.Flags().Float64Var(&params.X1, "x1", 0, "right bound")
	cmd.Flags().Float64Var(&params.Y1, "y1", 0, "bottom bound")
	cmd.Flags().StringVar(&params.Name, "name", "", "analysis name")
	cmd.Flags().StringVar(&params.Slide, "slide", "", "slide id")
	cmd.Flags().StringVar(&params.Key, "key", "", "spatial index key")

	return cmd
}

func newMarksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MARK_ID",
		Short: "Get a mark",
		Long:  "Display a single mark by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Marks().Get(ctx, args[0])
			})
		},
	}
}

func markGetManyCall(ids []string, params castore.MarkMultiParams) storeCall {
	return func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		return store.Marks().GetByIDs(ctx, ids, params)
	}
}

func newMarksGetManyCommand() *cobra.Command {
	var params castore.MarkMultiParams

	cmd := &cobra.Command{
		Use:   "get-many MARK_ID...",
		Short: "Get several marks",
		Long:  "Fetch several marks on one slide by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, markGetManyCall(args, params))
		},
	}

	cmd.Flags().StringVar(&params.Slide, "slide", "", "slide id (required)")
	cmd.Flags().StringVar(&params.Source, "source", "", "mark source")
	cmd.Flags().Float64Var(&params.Footprint, "footprint", 0, "minimum footprint")
	cmd.Flags().Float64Var(&params.X0, "x0", 0, "left bound")
	cmd.Flags().Float64Var(&params.X1, "x1", 0, "right bound")
	cmd.Flags().Float64Var(&params.Y0, "y0", 0, "top bound")
	cmd.Flags().Float64Var(&params.Y1, "y1", 0, "bottom bound")
	_ = cmd.MarkFlagRequired("slide")

	return cmd
}

func newMarksAddCommand() *cobra.Command {
	var data, file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a mark",
		Long:  "Create a mark from a JSON or YAML record",
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := recordCall(cmd, data, file, func(ctx context.Context, store castore.Store, record castore.Record) (*castore.Result, error) {
				return store.Marks().Add(ctx, record)
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

func newMarksDeleteCommand() *cobra.Command {
	var slide string

	cmd := &cobra.Command{
		Use:   "delete MARK_ID",
		Short: "Delete a mark",
		Long:  "Delete a mark from a slide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Marks().Delete(ctx, args[0], slide)
			})
		},
	}

	cmd.Flags().StringVar(&slide, "slide", "", "slide id")

	return cmd
}

func newMarksTypesCommand() *cobra.Command {
	var slide, name string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List mark types on a slide",
		Long:  "List the analyses that produced marks on a slide; with --name, list its executions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Marks().FindTypes(ctx, slide, name)
			})
		},
	}

	cmd.Flags().StringVar(&slide, "slide", "", "slide id (required)")
	cmd.Flags().StringVar(&name, "name", "", "analysis name")

	return cmd
}
