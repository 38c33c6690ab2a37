//nolint:testpackage // Need access to internal types
package commands

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
	"github.com/fivetwenty-io/castore/pkg/schema"
	"github.com/fivetwenty-io/castore/pkg/storeclient"
)

const testBase = "http://store.test/data/"

type recorder struct {
	mu       sync.Mutex
	requests []*castore.Request
	status   int
	body     string
}

func (r *recorder) RoundTrip(_ context.Context, req *castore.Request) (*castore.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)

	status := r.status
	if status == 0 {
		status = http.StatusOK
	}

	body := r.body
	if body == "" {
		body = "{}"
	}

	return &castore.Response{
		StatusCode: status,
		StatusText: http.StatusText(status),
		URL:        req.URL,
		Body:       []byte(body),
	}, nil
}

func (r *recorder) last(t *testing.T) *castore.Request {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.requests)

	return r.requests[len(r.requests)-1]
}

func newRecordingStore(t *testing.T, rec *recorder, validation castore.Registry) castore.Store {
	t.Helper()

	store, err := storeclient.New(&castore.Config{
		Base:       testBase,
		Transport:  rec,
		Validation: validation,
	})
	require.NoError(t, err)

	return store
}

func TestExecuteStoreCall_Requests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		call   storeCall
		method string
		url    string
		body   string
	}{
		{
			name:   "marks find",
			call:   markFindCall(castore.MarkFindParams{Slide: "s1", Source: "human"}),
			method: constants.MethodGet,
			url:    testBase + "Mark/find?slide=s1&source=human",
		},
		{
			name:   "marks get many",
			call:   markGetManyCall([]string{"a", "b"}, castore.MarkMultiParams{Slide: "s1"}),
			method: constants.MethodGet,
			url:    testBase + "Mark/multi?name=%5B%22a%22%2C%22b%22%5D&slide=s1",
		},
		{
			name:   "heatmap fields",
			call:   heatmapFieldsCall("s1", "h1", "[1,2]", `{"mode":"gradient"}`),
			method: constants.MethodDelete,
			url:    testBase + "Heatmap/threshold?slide=s1&name=h1&fields=%5B1%2C2%5D&setting=%7B%22mode%22%3A%22gradient%22%7D",
		},
		{
			name:   "heatmap fields without setting",
			call:   heatmapFieldsCall("s1", "h1", "[3]", ""),
			method: constants.MethodDelete,
			url:    testBase + "Heatmap/threshold?slide=s1&name=h1&fields=%5B3%5D",
		},
		{
			name:   "heatmap edit update",
			call:   heatmapEditUpdateCall(heatmapEditFlags{user: "u1", slide: "s1", name: "h1"}, `[[1,2]]`),
			method: constants.MethodDelete,
			url:    testBase + "HeatmapEdit/update?user=u1&slide=s1&name=h1&data=%5B%5B1%2C2%5D%5D",
		},
		{
			name:   "collection post",
			call:   collectionWriteCall(false, "Mark", castore.NewQuery(), castore.Record{"_id": "m1"}),
			method: constants.MethodPost,
			url:    testBase + "Mark/post?",
			body:   `{"_id":"m1"}`,
		},
		{
			name:   "collection update",
			call:   collectionWriteCall(true, "Slide", castore.NewQuery().Require("id", "s1"), castore.Record{"name": "x"}),
			method: constants.MethodUpdate,
			url:    testBase + "Slide/update?id=s1",
			body:   `{"name":"x"}`,
		},
		{
			name:   "collection delete",
			call:   collectionDeleteCall("Template", castore.NewQuery().Require("id", "t1")),
			method: constants.MethodDelete,
			url:    testBase + "Template/delete?id=t1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			store := newRecordingStore(t, rec, nil)

			var buf bytes.Buffer
			err := executeStoreCall(context.Background(), &buf, store, tt.call, OutputFormatJSON)
			require.NoError(t, err)

			req := rec.last(t)
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.url, req.URL)

			if tt.body != "" {
				assert.JSONEq(t, tt.body, string(req.Body))
			}

			assert.JSONEq(t, `{}`, buf.String())
		})
	}
}

func TestExecuteStoreCall_Failure(t *testing.T) {
	t.Parallel()

	rec := &recorder{status: http.StatusUnauthorized, body: `{"error":"no"}`}
	store := newRecordingStore(t, rec, nil)

	var buf bytes.Buffer
	err := executeStoreCall(context.Background(), &buf, store, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		return store.Slides().Get(ctx, "s1")
	}, OutputFormatTable)

	require.ErrorIs(t, err, constants.ErrRequestFailed)
	assert.Equal(t, http.StatusUnauthorized, castore.StatusCode(err))
	assert.JSONEq(t, `{"error":true,"text":"Unauthorized","url":"`+testBase+`Slide/get?id=s1"}`, buf.String())
}

func TestExecuteStoreCall_PreconditionError(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	store := newRecordingStore(t, rec, nil)

	err := executeStoreCall(context.Background(), &bytes.Buffer{}, store, markGetManyCall(nil, castore.MarkMultiParams{Slide: "s1"}), OutputFormatJSON)
	require.ErrorIs(t, err, castore.ErrInvalidArguments)
	assert.Empty(t, rec.requests)
}

func TestExecuteStoreCall_Validation(t *testing.T) {
	t.Parallel()

	rec := &recorder{body: `[
		{"name": "tumor", "type": "region"},
		{"name": "no-type"},
		{"type": "no-name"}
	]`}
	store := newRecordingStore(t, rec, schema.Default())

	var buf bytes.Buffer
	err := executeStoreCall(context.Background(), &buf, store, func(ctx context.Context, store castore.Store) (*castore.Result, error) {
		return store.Templates().Find(ctx, "", "")
	}, OutputFormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"tumor","type":"region"}]`, buf.String())
}

func TestRecordCall(t *testing.T) {
	t.Parallel()

	cmd := newMarksAddCommand()
	cmd.SetIn(bytes.NewBufferString(`{"_id":"m1","footprint":4}`))

	call, err := recordCall(cmd, "", "", func(ctx context.Context, store castore.Store, record castore.Record) (*castore.Result, error) {
		return store.Marks().Add(ctx, record)
	})
	require.NoError(t, err)

	rec := &recorder{}
	store := newRecordingStore(t, rec, nil)

	require.NoError(t, executeStoreCall(context.Background(), &bytes.Buffer{}, store, call, OutputFormatJSON))

	req := rec.last(t)
	assert.Equal(t, constants.MethodPost, req.Method)
	assert.Equal(t, testBase+"Mark/post", req.URL)
	assert.JSONEq(t, `{"_id":"m1","footprint":4}`, string(req.Body))
}

func TestRecordCall_InvalidInput(t *testing.T) {
	t.Parallel()

	cmd := newLogsCommandAdd(t)
	cmd.SetIn(bytes.NewBufferString(`[1,2,3]`))

	_, err := recordCall(cmd, "", "", func(context.Context, castore.Store, castore.Record) (*castore.Result, error) {
		t.Fatal("add should not be called")

		return nil, nil
	})
	require.ErrorIs(t, err, constants.ErrNotAnObject)
}

func newLogsCommandAdd(t *testing.T) *cobra.Command {
	t.Helper()

	add := findSubcommand(NewLogsCommand(), "add")
	require.NotNil(t, add)

	return add
}
