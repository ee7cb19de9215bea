package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rpc", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "devnet", r.URL.Query().Get("cluster"))
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"echo":` + string(body) + `}`))
	}))
	defer server.Close()

	client, err := New(server.URL, Config{Headers: map[string]string{"X-Api-Key": "secret"}})
	require.NoError(t, err)

	resp, err := client.Post(context.Background(), "/rpc", RequestOptions{
		Body:  []byte(`{"a":1}`),
		Query: url.Values{"cluster": {"devnet"}},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	var out struct {
		Echo struct {
			A int `json:"a"`
		} `json:"echo"`
	}
	require.NoError(t, resp.UnmarshalBody(&out))
	assert.Equal(t, 1, out.Echo.A)
}

func TestUnmarshalPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	resp, err := client.Post(context.Background(), "", RequestOptions{})
	require.NoError(t, err)
	assert.Error(t, resp.UnmarshalBody(&struct{}{}))
}

func TestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := New(server.URL, Config{Timeout: 20 * time.Millisecond})
	require.NoError(t, err)

	_, err = client.Post(context.Background(), "", RequestOptions{})
	assert.ErrorIs(t, err, errs.Timeout)
}

func TestCancelledContext(t *testing.T) {
	client, err := New("http://127.0.0.1:1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Post(ctx, "", RequestOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewInvalidURL(t *testing.T) {
	_, err := New("ftp://example.com")
	assert.ErrorIs(t, err, errs.InvalidArgument)
}
