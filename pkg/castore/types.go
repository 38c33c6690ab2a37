package castore

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBase is the base path used when Config.Base is empty.
const DefaultBase = "./data/"

// EntityType identifies a record kind for validation and filtering.
type EntityType string

// Built-in entity types.
const (
	EntityMark          EntityType = "mark"
	EntityHeatmap       EntityType = "heatmap"
	EntityHeatmapEdit   EntityType = "heatmapedit"
	EntityOverlay       EntityType = "overlay"
	EntitySlide         EntityType = "slide"
	EntityTemplate      EntityType = "template"
	EntityLog           EntityType = "log"
	EntityConfiguration EntityType = "configuration"
)

// Record is a decoded JSON object returned by or sent to the store.
type Record map[string]interface{}

// Config represents store configuration for building a Store.
//
// A Store never mutates its configuration after construction, so one Config
// value may be shared by any number of stores.
type Config struct {
	// Base is the URL or path prefix for every endpoint. Endpoint suffixes are
	// appended verbatim, so it normally ends with a slash. Defaults to
	// DefaultBase.
	Base string
	// Validation maps entity type tags to validators. Keys are matched
	// case-insensitively. A missing entry disables filtering for that type.
	Validation Registry
	// Options is reserved for future use.
	Options map[string]interface{}

	// Transport performs the network round trip. storeclient.New builds the
	// default HTTP transport when it is nil.
	Transport Transport
	// Logger receives validation warnings and precondition errors.
	Logger Logger

	// The following fields configure the default HTTP transport and are
	// ignored when Transport is set.

	// Origin is used to resolve a relative Base and is sent as the Origin
	// header on cors-mode requests.
	Origin string
	// Token is sent as a Bearer token on credentialed requests.
	Token string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Timeout bounds each HTTP round trip. Zero means no timeout beyond the
	// request context.
	Timeout time.Duration
	// CookieJar stores session cookies for credentialed requests.
	CookieJar http.CookieJar
	// Debug enables request/response logging on the default transport.
	Debug bool
}

// Result is the envelope returned by every store operation.
//
// Exactly one of Data and Failure is meaningful: when Failure is non-nil the
// server answered with a non-2xx status and Data is nil.
type Result struct {
	Data    interface{}
	Failure *Failure
}

// Failed reports whether the server answered with a non-2xx status.
func (r *Result) Failed() bool {
	return r != nil && r.Failure != nil
}

// Err returns the failure as an error, or nil.
func (r *Result) Err() error {
	if !r.Failed() {
		return nil
	}

	return r.Failure
}

// Records returns the object elements of an array payload. A single object
// payload is returned as a one-element slice.
func (r *Result) Records() []Record {
	if r == nil || r.Data == nil {
		return nil
	}

	switch data := r.Data.(type) {
	case []interface{}:
		records := make([]Record, 0, len(data))

		for _, item := range data {
			if record, ok := asRecord(item); ok {
				records = append(records, record)
			}
		}

		return records
	case []Record:
		return data
	default:
		if record, ok := asRecord(data); ok {
			return []Record{record}
		}

		return nil
	}
}

// Record returns the payload as a single record.
func (r *Result) Record() (Record, bool) {
	if r == nil {
		return nil, false
	}

	return asRecord(r.Data)
}

// Failure is the structured value produced for a non-2xx response.
type Failure struct {
	StatusCode int
	Text       string
	URL        string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Text, f.URL)
}

// MarshalJSON renders the failure as {"error":true,"text":...,"url":...}.
func (f *Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error bool   `json:"error"`
		Text  string `json:"text"`
		URL   string `json:"url"`
	}{
		Error: true,
		Text:  f.Text,
		URL:   f.URL,
	})
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards every message.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}

func asRecord(value interface{}) (Record, bool) {
	switch v := value.(type) {
	case Record:
		return v, v != nil
	case map[string]interface{}:
		return Record(v), v != nil
	default:
		return nil, false
	}
}
