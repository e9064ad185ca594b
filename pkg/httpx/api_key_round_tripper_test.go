package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"rewardbot/pkg/httpx"
)

func TestAPIKeyRoundTripper(t *testing.T) {
	rq := require.New(t)

	var gotToken, gotURL string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("token")
		gotURL = r.URL.Query().Get("url")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{
		Transport: httpx.NewAPIKeyRoundTripper(http.DefaultTransport, "token", "secret-token"),
	}

	resp, err := client.Get(srv.URL + "?url=https://example.com/abc")
	rq.NoError(err)
	defer resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("secret-token", gotToken)
	rq.Equal("https://example.com/abc", gotURL)
}
