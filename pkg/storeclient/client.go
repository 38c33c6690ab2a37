// Package storeclient provides the main entry point for creating store clients
package storeclient

import (
	"fmt"

	"github.com/fivetwenty-io/castore/internal/auth"
	"github.com/fivetwenty-io/castore/internal/client"
	storehttp "github.com/fivetwenty-io/castore/internal/http"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// New creates a new store. When config.Transport is nil the default HTTP
// transport is built from the transport fields of config. The caller's
// config is not modified.
func New(config *castore.Config) (castore.Store, error) {
	if config == nil {
		return nil, castore.ErrConfigRequired
	}

	resolved := *config

	if resolved.Transport == nil {
		transport, err := NewTransport(config)
		if err != nil {
			return nil, err
		}

		resolved.Transport = transport
	}

	store, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new store: %w", err)
	}

	return store, nil
}

// NewTransport builds the default HTTP transport for config: a single
// attempt per call, the Origin header and relative base resolution when
// config.Origin is set, and a Bearer token when config.Token is set.
func NewTransport(config *castore.Config) (castore.Transport, error) {
	if config == nil {
		return nil, castore.ErrConfigRequired
	}

	opts := []storehttp.Option{
		storehttp.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		opts = append(opts, storehttp.WithLogger(config.Logger))
	}

	if config.Origin != "" {
		_, err := storehttp.ParseOrigin(config.Origin)
		if err != nil {
			return nil, fmt.Errorf("parsing origin: %w", err)
		}

		opts = append(opts, storehttp.WithOrigin(config.Origin))
	}

	if config.Token != "" {
		tokenManager, err := auth.NewStaticTokenManager(config.Token)
		if err != nil {
			return nil, fmt.Errorf("parsing token: %w", err)
		}

		opts = append(opts, storehttp.WithTokenManager(tokenManager))
	}

	if config.UserAgent != "" {
		opts = append(opts, storehttp.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, storehttp.WithTimeout(config.Timeout))
	}

	if config.CookieJar != nil {
		opts = append(opts, storehttp.WithCookieJar(config.CookieJar))
	}

	return storehttp.NewClient(opts...), nil
}

// NewWithBase creates a new store for an absolute base URL (no auth).
func NewWithBase(base string) (castore.Store, error) {
	return New(&castore.Config{
		Base: base,
	})
}

// NewWithToken creates a new store with a base URL and access token.
func NewWithToken(base, token string) (castore.Store, error) {
	return New(&castore.Config{
		Base:  base,
		Token: token,
	})
}
