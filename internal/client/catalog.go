package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// OverlaysClient implements castore.OverlaysClient.
type OverlaysClient struct {
	requester *requester
}

// NewOverlaysClient creates a new overlays client.
func NewOverlaysClient(requester *requester) *OverlaysClient {
	return &OverlaysClient{requester: requester}
}

// Find implements castore.OverlaysClient.Find.
func (c *OverlaysClient) Find(ctx context.Context, name, slide string) (*castore.Result, error) {
	query := castore.NewQuery().
		Set("name", name).
		Set("slide", slide)

	res, err := c.requester.read(ctx, constants.OverlayFind, query, "")
	if err != nil {
		return nil, fmt.Errorf("finding overlays: %w", err)
	}

	return res, nil
}

// Get implements castore.OverlaysClient.Get.
func (c *OverlaysClient) Get(ctx context.Context, id string) (*castore.Result, error) {
	query := castore.NewQuery().Require("id", id)

	res, err := c.requester.read(ctx, constants.OverlayGet, query, "")
	if err != nil {
		return nil, fmt.Errorf("getting overlay: %w", err)
	}

	return res, nil
}

// SlidesClient implements castore.SlidesClient.
type SlidesClient struct {
	requester *requester
}

// NewSlidesClient creates a new slides client.
func NewSlidesClient(requester *requester) *SlidesClient {
	return &SlidesClient{requester: requester}
}

// Find implements castore.SlidesClient.Find.
func (c *SlidesClient) Find(ctx context.Context, params castore.SlideFindParams) (*castore.Result, error) {
	query := castore.NewQuery().
		Set("slide", params.Slide).
		Set("study", params.Study).
		Set("specimen", params.Specimen).
		Set("location", params.Location)

	res, err := c.requester.read(ctx, constants.SlideFind, query, "")
	if err != nil {
		return nil, fmt.Errorf("finding slides: %w", err)
	}

	return res, nil
}

// Get implements castore.SlidesClient.Get.
func (c *SlidesClient) Get(ctx context.Context, id string) (*castore.Result, error) {
	query := castore.NewQuery().Require("id", id)

	res, err := c.requester.read(ctx, constants.SlideGet, query, castore.EntitySlide)
	if err != nil {
		return nil, fmt.Errorf("getting slide: %w", err)
	}

	return res, nil
}

// TemplatesClient implements castore.TemplatesClient.
type TemplatesClient struct {
	requester *requester
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(requester *requester) *TemplatesClient {
	return &TemplatesClient{requester: requester}
}

// Find implements castore.TemplatesClient.Find.
func (c *TemplatesClient) Find(ctx context.Context, name, templateType string) (*castore.Result, error) {
	query := castore.NewQuery().
		Set("name", name).
		Set("type", templateType)

	res, err := c.requester.read(ctx, constants.TemplateFind, query, castore.EntityTemplate)
	if err != nil {
		return nil, fmt.Errorf("finding templates: %w", err)
	}

	return res, nil
}

// Get implements castore.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context, id string) (*castore.Result, error) {
	query := castore.NewQuery().Require("id", id)

	res, err := c.requester.read(ctx, constants.TemplateGet, query, castore.EntityTemplate)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	return res, nil
}
