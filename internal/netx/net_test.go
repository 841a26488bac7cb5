package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoServer(t *testing.T, got *string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestBearerTransport(t *testing.T) {
	t.Run("attaches token when present", func(t *testing.T) {
		var got string
		ts := newEchoServer(t, &got)
		c := &http.Client{Transport: &BearerTransport{Token: func() string { return "QpwL5tke4Pnpja7X4" }}}

		req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
		require.NoError(t, err)
		resp, err := c.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, "Bearer QpwL5tke4Pnpja7X4", got)
		assert.Empty(t, req.Header.Get("Authorization"), "caller request must not be mutated")
	})

	t.Run("no token proceeds unauthenticated", func(t *testing.T) {
		var got string
		ts := newEchoServer(t, &got)
		c := &http.Client{Transport: &BearerTransport{Token: func() string { return "" }}}

		resp, err := c.Get(ts.URL)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Empty(t, got)
	})

	t.Run("anonymous context skips token", func(t *testing.T) {
		var got string
		ts := newEchoServer(t, &got)
		c := &http.Client{Transport: &BearerTransport{Token: func() string { return "tok" }}}

		req, err := http.NewRequestWithContext(WithoutAuth(context.Background()), http.MethodPost, ts.URL, nil)
		require.NoError(t, err)
		resp, err := c.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Empty(t, got)
	})
}

func TestReadErrorBody_Limited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(strings.Repeat("x", 10000)))
	}))
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, ReadErrorBody(resp), maxErrorBody)
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(302))
	assert.False(t, IsSuccess(401))
}
