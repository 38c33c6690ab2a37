package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// HeatmapEditsClient implements castore.HeatmapEditsClient.
type HeatmapEditsClient struct {
	requester *requester
}

// NewHeatmapEditsClient creates a new heatmap edits client.
func NewHeatmapEditsClient(requester *requester) *HeatmapEditsClient {
	return &HeatmapEditsClient{
		requester: requester,
	}
}

// Add implements castore.HeatmapEditsClient.Add.
func (c *HeatmapEditsClient) Add(ctx context.Context, record interface{}) (*castore.Result, error) {
	res, err := c.requester.write(ctx, constants.MethodPost, constants.EditPost, nil, record)
	if err != nil {
		return nil, fmt.Errorf("adding heatmap edit: %w", err)
	}

	return res, nil
}

// Update implements castore.HeatmapEditsClient.Update.
// The server routes HeatmapEdit/update as a DELETE, so that verb is used.
func (c *HeatmapEditsClient) Update(ctx context.Context, params castore.HeatmapEditParams) (*castore.Result, error) {
	data, err := jsonParam(params.Data)
	if err != nil {
		return nil, fmt.Errorf("encoding heatmap edit data: %w", err)
	}

	query := castore.NewQuery().
		Set("user", params.User).
		Set("slide", params.Slide).
		Set("name", params.Name).
		Set("data", data)

	res, err := c.requester.remove(ctx, constants.MethodDelete, constants.EditUpdate, query)
	if err != nil {
		return nil, fmt.Errorf("updating heatmap edit: %w", err)
	}

	return res, nil
}

// Find implements castore.HeatmapEditsClient.Find.
func (c *HeatmapEditsClient) Find(ctx context.Context, user, slide, name string) (*castore.Result, error) {
	query := castore.NewQuery().
		Set("user", user).
		Set("slide", slide).
		Set("name", name)

	res, err := c.requester.read(ctx, constants.EditFind, query, "")
	if err != nil {
		return nil, fmt.Errorf("finding heatmap edits: %w", err)
	}

	return res, nil
}

// Delete implements castore.HeatmapEditsClient.Delete.
func (c *HeatmapEditsClient) Delete(ctx context.Context, user, slide, name string) (*castore.Result, error) {
	query := castore.NewQuery().
		Set("user", user).
		Set("slide", slide).
		Set("name", name)

	res, err := c.requester.remove(ctx, constants.MethodDelete, constants.EditDelete, query)
	if err != nil {
		return nil, fmt.Errorf("deleting heatmap edit: %w", err)
	}

	return res, nil
}
