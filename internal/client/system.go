package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// LogsClient implements castore.LogsClient.
type LogsClient struct {
	requester *requester
}

// NewLogsClient creates a new logs client.
func NewLogsClient(requester *requester) *LogsClient {
	return &LogsClient{requester: requester}
}

// Add implements castore.LogsClient.Add.
func (c *LogsClient) Add(ctx context.Context, record interface{}) (*castore.Result, error) {
	res, err := c.requester.write(ctx, constants.MethodPost, constants.LogPost, nil, record)
	if err != nil {
		return nil, fmt.Errorf("adding log: %w", err)
	}

	return res, nil
}

// ConfigurationsClient implements castore.ConfigurationsClient.
type ConfigurationsClient struct {
	requester *requester
}

// NewConfigurationsClient creates a new configurations client.
func NewConfigurationsClient(requester *requester) *ConfigurationsClient {
	return &ConfigurationsClient{requester: requester}
}

// GetByName implements castore.ConfigurationsClient.GetByName.
func (c *ConfigurationsClient) GetByName(ctx context.Context, name string) (*castore.Result, error) {
	query := castore.NewQuery().Require("name", name)

	res, err := c.requester.read(ctx, constants.ConfigByName, query, "")
	if err != nil {
		return nil, fmt.Errorf("getting configuration: %w", err)
	}

	return res, nil
}
