package shortener_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"rewardbot/internal/config"
	"rewardbot/internal/domain"
	"rewardbot/internal/infrastructure/shortener"
	"rewardbot/pkg/errcodes"
	"rewardbot/pkg/httpx"
)

func TestShorten(t *testing.T) {
	t.Run("success returns the short URL", func(t *testing.T) {
		rq := require.New(t)

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rq.Equal("/QL_api.php", r.URL.Path)
			rq.Equal("json", r.URL.Query().Get("format"))
			rq.Equal("https://paste.example/a1b2c3", r.URL.Query().Get("url"))
			rq.Equal("apitoken", r.URL.Query().Get("token"))

			_, _ = w.Write([]byte(`{"status":"success","shortenedUrl":"https://sh.example/x"}`))
		}))
		defer ts.Close()

		client := shortener.NewClient(config.Shortener{BaseURL: ts.URL}, &http.Client{
			Transport: httpx.NewAPIKeyRoundTripper(http.DefaultTransport, "token", "apitoken"),
		})

		short, err := client.Shorten(context.Background(), "https://paste.example/a1b2c3")

		rq.NoError(err)
		rq.Equal("https://sh.example/x", short)
	})

	t.Run("API error message is surfaced", func(t *testing.T) {
		rq := require.New(t)

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"error","message":"invalid token"}`))
		}))
		defer ts.Close()

		client := shortener.NewClient(config.Shortener{BaseURL: ts.URL}, ts.Client())

		_, err := client.Shorten(context.Background(), "https://paste.example/a1b2c3")

		rq.True(domain.HasCode(err, errcodes.ShortenerServiceError))
		rq.Contains(err.Error(), "invalid token")
	})

	t.Run("success status without URL is rejected", func(t *testing.T) {
		rq := require.New(t)

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"success","shortenedUrl":""}`))
		}))
		defer ts.Close()

		client := shortener.NewClient(config.Shortener{BaseURL: ts.URL}, ts.Client())

		_, err := client.Shorten(context.Background(), "https://paste.example/a1b2c3")

		rq.True(domain.HasCode(err, errcodes.ShortenerServiceError))
	})
}
