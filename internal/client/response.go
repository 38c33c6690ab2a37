package client

import (
	"fmt"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// handleResponse normalizes a completed round trip. A non-2xx status yields a
// Result carrying a Failure and no error; a 2xx body is decoded as JSON and a
// decode failure is returned as an error wrapping castore.ErrInvalidPayload.
func handleResponse(resp *castore.Response, requestURL string) (*castore.Result, error) {
	if !resp.OK() {
		url := resp.URL
		if url == "" {
			url = requestURL
		}

		return &castore.Result{
			Failure: &castore.Failure{
				StatusCode: resp.StatusCode,
				Text:       resp.StatusText,
				URL:        url,
			},
		}, nil
	}

	var data interface{}

	err := resp.JSON(&data)
	if err != nil {
		return nil, fmt.Errorf("parsing response from %s: %w", requestURL, err)
	}

	return &castore.Result{Data: data}, nil
}
