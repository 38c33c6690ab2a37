package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// NewOverlaysCommand creates the overlays command group.
func NewOverlaysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "overlays",
		Aliases: []string{"overlay"},
		Short:   "Inspect overlays",
		Long:    "Find and fetch slide overlays",
	}

	var name, slide string

	find := &cobra.Command{
		Use:   "find",
		Short: "Find overlays",
		Long:  "Find overlays by name and slide",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Overlays().Find(ctx, name, slide)
			})
		},
	}
	find.Flags().StringVar(&name, "name", "", "overlay name")
	find.Flags().StringVar(&slide, "slide", "", "slide id")

	cmd.AddCommand(find)
	cmd.AddCommand(newGetByIDCommand("OVERLAY_ID", "an overlay", func(store castore.Store) getByID {
		return store.Overlays().Get
	}))

	return cmd
}

// NewSlidesCommand creates the slides command group.
func NewSlidesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "slides",
		Aliases: []string{"slide", "s"},
		Short:   "Inspect slides",
		Long:    "Find and fetch slides in the image catalog",
	}

	var params castore.SlideFindParams

	find := &cobra.Command{
		Use:   "find",
		Short: "Find slides",
		Long:  "Find slides by name, specimen, study and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Slides().Find(ctx, params)
			})
		},
	}
	find.Flags().StringVar(&params.Slide, "slide", "", "slide name")
	find.Flags().StringVar(&params.Specimen, "specimen", "", "specimen id")
	find.Flags().StringVar(&params.Study, "study", "", "study id")
	find.Flags().StringVar(&params.Location, "location", "", "image location")

	cmd.AddCommand(find)
	cmd.AddCommand(newGetByIDCommand("SLIDE_ID", "a slide", func(store castore.Store) getByID {
		return store.Slides().Get
	}))

	return cmd
}

// NewTemplatesCommand creates the templates command group.
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template", "tpl"},
		Short:   "Inspect templates",
		Long:    "Find and fetch annotation templates",
	}

	var name, templateType string

	find := &cobra.Command{
		Use:   "find",
		Short: "Find templates",
		Long:  "Find templates by name and type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return store.Templates().Find(ctx, name, templateType)
			})
		},
	}
	find.Flags().StringVar(&name, "name", "", "template name")
	find.Flags().StringVar(&templateType, "type", "", "template type")

	cmd.AddCommand(find)
	cmd.AddCommand(newGetByIDCommand("TEMPLATE_ID", "a template", func(store castore.Store) getByID {
		return store.Templates().Get
	}))

	return cmd
}

type getByID func(ctx context.Context, id string) (*castore.Result, error)

func newGetByIDCommand(arg, noun string, resolve func(store castore.Store) getByID) *cobra.Command {
	return &cobra.Command{
		Use:   "get " + arg,
		Short: "Get " + noun,
		Long:  "Display " + noun + " by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreCall(cmd, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
				return resolve(store)(ctx, args[0])
			})
		},
	}
}
