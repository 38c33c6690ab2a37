package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// HeatmapsClient implements castore.HeatmapsClient.
type HeatmapsClient struct {
	requester *requester
}

// NewHeatmapsClient creates a new heatmaps client.
func NewHeatmapsClient(requester *requester) *HeatmapsClient {
	return &HeatmapsClient{
		requester: requester,
	}
}

// Find implements castore.HeatmapsClient.Find.
func (c *HeatmapsClient) Find(ctx context.Context, slide, name string) (*castore.Result, error) {
	query := castore.NewQuery().
		Set("name", name).
		Set("slide", slide)

	res, err := c.requester.read(ctx, constants.HeatmapFind, query, castore.EntityHeatmap)
	if err != nil {
		return nil, fmt.Errorf("finding heatmaps: %w", err)
	}

	return res, nil
}

// FindTypes implements castore.HeatmapsClient.FindTypes.
func (c *HeatmapsClient) FindTypes(ctx context.Context, slide, name string) (*castore.Result, error) {
	query := castore.NewQuery().
		Set("name", name).
		Set("slide", slide)

	res, err := c.requester.read(ctx, constants.HeatmapTypes, query, castore.EntityHeatmap)
	if err != nil {
		return nil, fmt.Errorf("finding heatmap types: %w", err)
	}

	return res, nil
}

// Get implements castore.HeatmapsClient.Get.
func (c *HeatmapsClient) Get(ctx context.Context, slide, name string) (*castore.Result, error) {
	query := castore.NewQuery().
		Require("slide", slide).
		Require("name", name)

	res, err := c.requester.read(ctx, constants.HeatmapGet, query, castore.EntityHeatmap)
	if err != nil {
		return nil, fmt.Errorf("getting heatmap: %w", err)
	}

	return res, nil
}

// Add implements castore.HeatmapsClient.Add.
// A record rejected by the heatmap validator is logged and still sent.
func (c *HeatmapsClient) Add(ctx context.Context, record interface{}) (*castore.Result, error) {
	c.requester.warnInvalid(castore.EntityHeatmap, record)

	res, err := c.requester.write(ctx, constants.MethodPost, constants.HeatmapPost, nil, record)
	if err != nil {
		return nil, fmt.Errorf("adding heatmap: %w", err)
	}

	return res, nil
}

// Delete implements castore.HeatmapsClient.Delete.
func (c *HeatmapsClient) Delete(ctx context.Context, id, slide string) (*castore.Result, error) {
	query := castore.NewQuery().
		Require("id", id).
		Require("slide", slide)

	res, err := c.requester.remove(ctx, constants.MethodDelete, constants.HeatmapDelete, query)
	if err != nil {
		return nil, fmt.Errorf("deleting heatmap: %w", err)
	}

	return res, nil
}

// UpdateFields implements castore.HeatmapsClient.UpdateFields.
// The server routes Heatmap/threshold as a DELETE, so that verb is used.
func (c *HeatmapsClient) UpdateFields(ctx context.Context, params castore.HeatmapFieldsParams) (*castore.Result, error) {
	fields, err := jsonParam(params.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding heatmap fields: %w", err)
	}

	setting, err := jsonParam(params.Setting)
	if err != nil {
		return nil, fmt.Errorf("encoding heatmap setting: %w", err)
	}

	query := castore.NewQuery().
		Set("slide", params.Slide).
		Set("name", params.Name).
		Set("fields", fields).
		Set("setting", setting)

	res, err := c.requester.remove(ctx, constants.MethodDelete, constants.HeatmapFields, query)
	if err != nil {
		return nil, fmt.Errorf("updating heatmap fields: %w", err)
	}

	return res, nil
}

// jsonParam passes strings through and JSON-encodes any other non-nil value.
func jsonParam(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
