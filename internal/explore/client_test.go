package explore_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bookbin/internal/explore"
)

func serve(t *testing.T, status int, body string) (*httptest.Server, *url.URL) {
	t.Helper()
	got := &url.URL{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = *r.URL
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestFetch_DecodesEnvelope(t *testing.T) {
	srv, req := serve(t, http.StatusOK, `{"status":"OK","code":200,"total":2,"data":[
		{"id":1,"title":"Dune","author":"Frank Herbert","genre":"Sci-Fi","isbn":"x"},
		{"id":2,"title":"Emma","author":"Jane Austen","genre":"Romance"}
	]}`)

	stubs, err := explore.New(srv.URL, 0, 0).Fetch(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, stubs, 2)
	assert.Equal(t, "Dune", stubs[0].Title)
	assert.Equal(t, "Frank Herbert", stubs[0].Author)
	assert.Equal(t, "Romance", stubs[1].Genre)

	assert.Equal(t, "/books", req.Path)
	assert.Equal(t, "2", req.Query().Get("_quantity"))
}

func TestFetch_DefaultCount(t *testing.T) {
	srv, req := serve(t, http.StatusOK, `{"data":[]}`)

	stubs, err := explore.New(srv.URL+"/", 0, 0).Fetch(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, stubs)
	assert.Equal(t, "10", req.Query().Get("_quantity"))
	assert.Equal(t, "/books", req.Path)
}

func TestFetch_DropsUntitled(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"data":[{"title":"  ","author":"x"},{"title":"Kept","author":"y","genre":"z"}]}`)

	stubs, err := explore.New(srv.URL, 0, 0).Fetch(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, stubs, 1)
	assert.Equal(t, "Kept", stubs[0].Title)
}

func TestFetch_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":     `<html>`,
		"data object":  `{"data":{"title":"x"}}`,
		"data missing": `{"status":"OK"}`,
		"data null":    `{"data":null}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := serve(t, http.StatusOK, body)
			_, err := explore.New(srv.URL, 0, 0).Fetch(context.Background(), 1)
			assert.ErrorIs(t, err, explore.ErrMalformedResponse)
		})
	}
}

func TestFetch_Non2xx(t *testing.T) {
	srv, _ := serve(t, http.StatusServiceUnavailable, `down`)

	_, err := explore.New(srv.URL, 0, 0).Fetch(context.Background(), 1)
	assert.ErrorIs(t, err, explore.ErrUnavailable)
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := explore.New(base, 0, 0).Fetch(context.Background(), 1)
	assert.ErrorIs(t, err, explore.ErrUnavailable)
}

func TestFetch_CanceledContext(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, `{"data":[]}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := explore.New(srv.URL, 0, 1).Fetch(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
