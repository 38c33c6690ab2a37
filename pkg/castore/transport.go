package castore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CredentialsMode controls whether credentials accompany a request.
type CredentialsMode string

// Credentials modes.
const (
	CredentialsInclude CredentialsMode = "include"
	CredentialsOmit    CredentialsMode = "omit"
)

// RequestMode is the cross-origin mode of a request.
type RequestMode string

// Request modes.
const (
	ModeCORS       RequestMode = "cors"
	ModeSameOrigin RequestMode = "same-origin"
)

// Request is a single outbound call handed to a Transport.
type Request struct {
	Method      string
	URL         string
	Header      http.Header
	Body        []byte
	Credentials CredentialsMode
	Mode        RequestMode
}

// Response is the completed result of a Transport round trip.
type Response struct {
	StatusCode int
	StatusText string
	// URL is the final request URL, after redirects.
	URL    string
	Header http.Header
	Body   []byte
}

// OK reports whether the status is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// JSON decodes the body into v.
func (r *Response) JSON(v interface{}) error {
	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return nil
}

// Transport performs exactly one network round trip.
//
// Implementations must return an error only for transport-level failures;
// a non-2xx status is a valid Response.
type Transport interface {
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// RoundTrip implements Transport.
func (f TransportFunc) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}
