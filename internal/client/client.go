package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// Client implements the castore.Store interface.
type Client struct {
	requester *requester

	// Resource clients
	marks          castore.MarksClient
	heatmaps       castore.HeatmapsClient
	heatmapEdits   castore.HeatmapEditsClient
	overlays       castore.OverlaysClient
	slides         castore.SlidesClient
	templates      castore.TemplatesClient
	logs           castore.LogsClient
	configurations castore.ConfigurationsClient
}

// New creates a new store client. The configuration is copied; later
// changes to config do not affect the client.
func New(config *castore.Config) (*Client, error) {
	if config == nil {
		return nil, castore.ErrConfigRequired
	}

	if config.Transport == nil {
		return nil, castore.ErrTransportRequired
	}

	base := config.Base
	if base == "" {
		base = castore.DefaultBase
	}

	var logger castore.Logger = castore.NopLogger{}
	if config.Logger != nil {
		logger = config.Logger
	}

	client := &Client{
		requester: &requester{
			transport:  config.Transport,
			base:       base,
			validation: castore.NewRegistry(config.Validation),
			logger:     logger,
		},
	}

	client.initializeResourceClients()

	return client, nil
}

// Base implements castore.Store.Base.
func (c *Client) Base() string {
	return c.requester.base
}

// Resource client accessors

// Marks implements castore.Store.Marks.
func (c *Client) Marks() castore.MarksClient {
	return c.marks
}

// Heatmaps implements castore.Store.Heatmaps.
func (c *Client) Heatmaps() castore.HeatmapsClient {
	return c.heatmaps
}

// HeatmapEdits implements castore.Store.HeatmapEdits.
func (c *Client) HeatmapEdits() castore.HeatmapEditsClient {
	return c.heatmapEdits
}

// Overlays implements castore.Store.Overlays.
func (c *Client) Overlays() castore.OverlaysClient {
	return c.overlays
}

// Slides implements castore.Store.Slides.
func (c *Client) Slides() castore.SlidesClient {
	return c.slides
}

// Templates implements castore.Store.Templates.
func (c *Client) Templates() castore.TemplatesClient {
	return c.templates
}

// Logs implements castore.Store.Logs.
func (c *Client) Logs() castore.LogsClient {
	return c.logs
}

// Configurations implements castore.Store.Configurations.
func (c *Client) Configurations() castore.ConfigurationsClient {
	return c.configurations
}

// Post implements castore.CollectionClient.Post.
func (c *Client) Post(ctx context.Context, collection string, query *castore.Query, data interface{}) (*castore.Result, error) {
	suffix, err := collectionSuffix(collection, constants.CollectionPost)
	if err != nil {
		return nil, err
	}

	res, err := c.requester.write(ctx, constants.MethodPost, suffix, orEmpty(query), data)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", collection, err)
	}

	return res, nil
}

// Update implements castore.CollectionClient.Update.
func (c *Client) Update(ctx context.Context, collection string, query *castore.Query, data interface{}) (*castore.Result, error) {
	suffix, err := collectionSuffix(collection, constants.CollectionEdit)
	if err != nil {
		return nil, err
	}

	res, err := c.requester.write(ctx, constants.MethodUpdate, suffix, orEmpty(query), data)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", collection, err)
	}

	return res, nil
}

// Delete implements castore.CollectionClient.Delete.
func (c *Client) Delete(ctx context.Context, collection string, query *castore.Query) (*castore.Result, error) {
	suffix, err := collectionSuffix(collection, constants.CollectionDrop)
	if err != nil {
		return nil, err
	}

	res, err := c.requester.remove(ctx, constants.MethodDelete, suffix, orEmpty(query))
	if err != nil {
		return nil, fmt.Errorf("deleting from %s: %w", collection, err)
	}

	return res, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.marks = NewMarksClient(c.requester)
	c.heatmaps = NewHeatmapsClient(c.requester)
	c.heatmapEdits = NewHeatmapEditsClient(c.requester)
	c.overlays = NewOverlaysClient(c.requester)
	c.slides = NewSlidesClient(c.requester)
	c.templates = NewTemplatesClient(c.requester)
	c.logs = NewLogsClient(c.requester)
	c.configurations = NewConfigurationsClient(c.requester)
}

func collectionSuffix(collection, action string) (string, error) {
	collection = strings.Trim(collection, "/")
	if collection == "" {
		return "", castore.ErrCollectionMissing
	}

	return collection + action, nil
}

func orEmpty(query *castore.Query) *castore.Query {
	if query == nil {
		return castore.NewQuery()
	}

	return query
}
