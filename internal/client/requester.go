package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// requester runs the shared encode, round trip, handle, filter pipeline.
// It holds only immutable configuration and is safe for concurrent use.
type requester struct {
	transport  castore.Transport
	base       string
	validation castore.Registry
	logger     castore.Logger
}

// read issues a body-less GET and filters the payload for tag. An empty tag
// skips filtering.
func (r *requester) read(ctx context.Context, suffix string, query *castore.Query, tag castore.EntityType) (*castore.Result, error) {
	res, err := r.do(ctx, &castore.Request{
		Method:      constants.MethodGet,
		URL:         r.url(suffix, query),
		Credentials: castore.CredentialsInclude,
		Mode:        castore.ModeCORS,
	})
	if err != nil {
		return nil, err
	}

	if tag != "" && !res.Failed() {
		res.Data = r.validation.Filter(res.Data, tag)
	}

	return res, nil
}

// write issues a JSON body-bearing request. A nil query leaves the URL
// without a query string.
func (r *requester) write(ctx context.Context, method, suffix string, query *castore.Query, data interface{}) (*castore.Result, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", constants.JSONContentType)

	return r.do(ctx, &castore.Request{
		Method:      method,
		URL:         r.url(suffix, query),
		Header:      header,
		Body:        body,
		Credentials: castore.CredentialsInclude,
		Mode:        castore.ModeCORS,
	})
}

// remove issues a body-less request with query-encoded identifiers.
func (r *requester) remove(ctx context.Context, method, suffix string, query *castore.Query) (*castore.Result, error) {
	return r.do(ctx, &castore.Request{
		Method:      method,
		URL:         r.url(suffix, query),
		Credentials: castore.CredentialsInclude,
		Mode:        castore.ModeCORS,
	})
}

// warnInvalid logs a diagnostic when record fails the validator for tag.
// The caller proceeds regardless.
func (r *requester) warnInvalid(tag castore.EntityType, data interface{}) {
	validate, ok := r.validation.Lookup(tag)
	if !ok {
		return
	}

	record, err := toRecord(data)
	if err == nil {
		err = validate(record)
	}

	if err != nil {
		r.logger.Warn("record failed validation", map[string]interface{}{
			"type":  string(tag),
			"error": err.Error(),
		})
	}
}

func (r *requester) do(ctx context.Context, req *castore.Request) (*castore.Result, error) {
	resp, err := r.transport.RoundTrip(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, castore.ErrNoResponse
	}

	res, err := handleResponse(resp, req.URL)
	if err != nil {
		return nil, err
	}

	if res.Failed() {
		r.logger.Debug("store request failed", map[string]interface{}{
			"method": req.Method,
			"url":    res.Failure.URL,
			"status": res.Failure.StatusCode,
		})
	}

	return res, nil
}

func (r *requester) url(suffix string, query *castore.Query) string {
	target := r.base + suffix
	if query == nil {
		return target
	}

	return target + "?" + query.Encode()
}

// toRecord converts an arbitrary write payload to a Record for validation.
func toRecord(data interface{}) (castore.Record, error) {
	switch v := data.(type) {
	case castore.Record:
		return v, nil
	case map[string]interface{}:
		return castore.Record(v), nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}

	var record castore.Record

	err = json.Unmarshal(raw, &record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", castore.ErrRecordRejected, err)
	}

	return record, nil
}
