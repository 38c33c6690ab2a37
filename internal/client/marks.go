package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// MarksClient implements castore.MarksClient.
type MarksClient struct {
	requester *requester
}

// NewMarksClient creates a new marks client.
func NewMarksClient(requester *requester) *MarksClient {
	return &MarksClient{
		requester: requester,
	}
}

// Find implements castore.MarksClient.Find.
func (c *MarksClient) Find(ctx context.Context, params castore.MarkFindParams) (*castore.Result, error) {
	query := castore.NewQuery().
		Set("slide", params.Slide).
		Set("name", params.Name).
		Set("footprint", params.Footprint).
		Set("source", params.Source).
		Set("x0", params.X0).
		Set("x1", params.X1).
		Set("y0", params.Y0).
		Set("y1", params.Y1)

	res, err := c.requester.read(ctx, constants.MarkFind, query, castore.EntityMark)
	if err != nil {
		return nil, fmt.Errorf("finding marks: %w", err)
	}

	return res, nil
}

// FindSpatial implements castore.MarksClient.FindSpatial.
func (c *MarksClient) FindSpatial(ctx context.Context, params castore.MarkSpatialParams) (*castore.Result, error) {
	query := castore.NewQuery().
		Require("x0", params.X0).
		Require("y0", params.Y0).
		Require("x1", params.X1).
		Require("y1", params.Y1).
		Set("name", params.Name).
		Set("slide", params.Slide).
		Set("key", params.Key)

	res, err := c.requester.read(ctx, constants.MarkFindBound, query, castore.EntityMark)
	if err != nil {
		return nil, fmt.Errorf("finding marks in bounds: %w", err)
	}

	return res, nil
}

// GetByIDs implements castore.MarksClient.GetByIDs.
// It returns castore.ErrInvalidArguments without making a request when ids is
// empty or no slide is given.
func (c *MarksClient) GetByIDs(ctx context.Context, ids []string, params castore.MarkMultiParams) (*castore.Result, error) {
	if len(ids) == 0 || params.Slide == "" {
		return nil, castore.ErrInvalidArguments
	}

	query := castore.NewQuery().
		Require("name", ids).
		Require("slide", params.Slide).
		Set("source", params.Source).
		Set("footprint", params.Footprint).
		Set("x0", params.X0).
		Set("x1", params.X1).
		Set("y0", params.Y0).
		Set("y1", params.Y1)

	res, err := c.requester.read(ctx, constants.MarkMulti, query, castore.EntityMark)
	if err != nil {
		return nil, fmt.Errorf("getting marks by ids: %w", err)
	}

	return res, nil
}

// Get implements castore.MarksClient.Get.
func (c *MarksClient) Get(ctx context.Context, id string) (*castore.Result, error) {
	query := castore.NewQuery().Require("id", id)

	res, err := c.requester.read(ctx, constants.MarkGet, query, castore.EntityMark)
	if err != nil {
		return nil, fmt.Errorf("getting mark: %w", err)
	}

	return res, nil
}

// Add implements castore.MarksClient.Add.
// A record rejected by the mark validator is logged and still sent.
func (c *MarksClient) Add(ctx context.Context, record interface{}) (*castore.Result, error) {
	c.requester.warnInvalid(castore.EntityMark, record)

	res, err := c.requester.write(ctx, constants.MethodPost, constants.MarkPost, nil, record)
	if err != nil {
		return nil, fmt.Errorf("adding mark: %w", err)
	}

	return res, nil
}

// Delete implements castore.MarksClient.Delete.
func (c *MarksClient) Delete(ctx context.Context, id, slide string) (*castore.Result, error) {
	query := castore.NewQuery().
		Require("id", id).
		Require("slide", slide)

	res, err := c.requester.remove(ctx, constants.MethodDelete, constants.MarkDelete, query)
	if err != nil {
		return nil, fmt.Errorf("deleting mark: %w", err)
	}

	return res, nil
}

// FindTypes implements castore.MarksClient.FindTypes.
// With a name the execution-level endpoint is used. A missing slide is logged
// and returned as castore.ErrSlideRequired without making a request.
func (c *MarksClient) FindTypes(ctx context.Context, slide, name string) (*castore.Result, error) {
	if slide == "" {
		c.requester.logger.Error("finding mark types needs a slide", nil)

		return nil, castore.ErrSlideRequired
	}

	suffix := constants.MarkTypes
	if name != "" {
		suffix = constants.MarkTypesExec
	}

	query := castore.NewQuery().
		Require("slide", slide).
		Set("name", name)

	res, err := c.requester.read(ctx, suffix, query, "")
	if err != nil {
		return nil, fmt.Errorf("finding mark types: %w", err)
	}

	return res, nil
}
