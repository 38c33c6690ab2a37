package client

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		require.ErrorIs(t, err, castore.ErrConfigRequired)
	})

	t.Run("missing transport", func(t *testing.T) {
		t.Parallel()

		_, err := New(&castore.Config{Base: "http://h/"})
		require.ErrorIs(t, err, castore.ErrTransportRequired)
	})

	t.Run("default base", func(t *testing.T) {
		t.Parallel()

		store, err := New(&castore.Config{Transport: &fakeTransport{}})
		require.NoError(t, err)
		assert.Equal(t, castore.DefaultBase, store.Base())
		assert.NotNil(t, store.Marks())
		assert.NotNil(t, store.Heatmaps())
		assert.NotNil(t, store.HeatmapEdits())
		assert.NotNil(t, store.Overlays())
		assert.NotNil(t, store.Slides())
		assert.NotNil(t, store.Templates())
		assert.NotNil(t, store.Logs())
		assert.NotNil(t, store.Configurations())
	})

	t.Run("registry is copied", func(t *testing.T) {
		t.Parallel()

		validation := castore.Registry{castore.EntityMark: castore.Predicate(hasX)}
		transport := respondJSON(http.StatusOK, []interface{}{map[string]interface{}{"y": 1}})
		store := newTestStore(t, transport, validation, nil)

		delete(validation, castore.EntityMark)

		res, err := store.Marks().Find(context.Background(), castore.MarkFindParams{})
		require.NoError(t, err)
		assert.Empty(t, res.Data)
	})
}

func TestClient_ImplementsStore(t *testing.T) {
	t.Parallel()

	var _ castore.Store = &Client{}
}

func TestCollection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		call       func(ctx context.Context, c *Client) (*castore.Result, error)
		wantMethod string
		wantURL    string
		wantBody   string
	}{
		{
			name: "post without query",
			call: func(ctx context.Context, c *Client) (*castore.Result, error) {
				return c.Post(ctx, "Mark", nil, map[string]interface{}{"a": 1})
			},
			wantMethod: constants.MethodPost,
			wantURL:    "http://store.test/data/Mark/post?",
			wantBody:   `{"a":1}`,
		},
		{
			name: "update with query",
			call: func(ctx context.Context, c *Client) (*castore.Result, error) {
				return c.Update(ctx, "Heatmap", castore.NewQuery().Set("id", "h1"), map[string]interface{}{"b": "x"})
			},
			wantMethod: constants.MethodUpdate,
			wantURL:    "http://store.test/data/Heatmap/update?id=h1",
			wantBody:   `{"b":"x"}`,
		},
		{
			name: "delete trims slashes",
			call: func(ctx context.Context, c *Client) (*castore.Result, error) {
				return c.Delete(ctx, "/Slide/", castore.NewQuery().Set("id", "s1"))
			},
			wantMethod: constants.MethodDelete,
			wantURL:    "http://store.test/data/Slide/delete?id=s1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := respondJSON(http.StatusOK, map[string]interface{}{"ok": true})
			store := newTestStore(t, transport, nil, nil)

			res, err := tt.call(context.Background(), store)
			require.NoError(t, err)
			assert.False(t, res.Failed())

			req := transport.last(t)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantURL, req.URL)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, string(req.Body))
				assert.Equal(t, constants.JSONContentType, req.Header.Get("Content-Type"))
			} else {
				assert.Empty(t, req.Body)
			}
		})
	}
}

func TestCollection_MissingType(t *testing.T) {
	t.Parallel()

	transport := &fakeTransport{}
	store := newTestStore(t, transport, nil, nil)
	ctx := context.Background()

	_, err := store.Post(ctx, "", nil, nil)
	require.ErrorIs(t, err, castore.ErrCollectionMissing)

	_, err = store.Update(ctx, "/", nil, nil)
	require.ErrorIs(t, err, castore.ErrCollectionMissing)

	_, err = store.Delete(ctx, "", nil)
	require.ErrorIs(t, err, castore.ErrCollectionMissing)

	assert.Equal(t, 0, transport.calls())
}

func TestClient_ConcurrentUse(t *testing.T) {
	t.Parallel()

	validation := castore.Registry{castore.EntityMark: castore.Predicate(hasX)}
	transport := respondJSON(http.StatusOK, []interface{}{
		map[string]interface{}{"x": 1},
		map[string]interface{}{"y": 2},
	})
	store := newTestStore(t, transport, validation, nil)

	const workers = 16

	var wg sync.WaitGroup

	results := make([]*castore.Result, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			results[i], errs[i] = store.Marks().Find(context.Background(), castore.MarkFindParams{Slide: "s1"})
		}(i)
	}

	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i].Records(), 1)
	}

	assert.Equal(t, workers, transport.calls())
}
