package paste_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"rewardbot/internal/config"
	"rewardbot/internal/domain"
	"rewardbot/internal/infrastructure/paste"
	"rewardbot/pkg/errcodes"
)

func TestCreate(t *testing.T) {
	t.Run("success returns the paste URL", func(t *testing.T) {
		rq := require.New(t)

		var (
			form url.Values
			ts   *httptest.Server
		)

		ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rq.Equal("/api/api_post.php", r.URL.Path)
			rq.NoError(r.ParseForm())
			form = r.PostForm

			_, _ = w.Write([]byte(ts.URL + "/a1b2c3"))
		}))
		defer ts.Close()

		client := paste.NewClient(config.Paste{APIKey: "devkey", BaseURL: ts.URL}, ts.Client())

		pasteURL, err := client.Create(context.Background(), "code", "ABCDEF123456")

		rq.NoError(err)
		rq.Equal(ts.URL+"/a1b2c3", pasteURL)
		rq.Equal("devkey", form.Get("api_dev_key"))
		rq.Equal("ABCDEF123456", form.Get("api_paste_code"))
		rq.Equal("1", form.Get("api_paste_private"))
		rq.Equal("10M", form.Get("api_paste_expire_date"))
	})

	t.Run("API error body is rejected despite 200", func(t *testing.T) {
		rq := require.New(t)

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("Bad API request, invalid api_dev_key"))
		}))
		defer ts.Close()

		client := paste.NewClient(config.Paste{APIKey: "devkey", BaseURL: ts.URL}, ts.Client())

		_, err := client.Create(context.Background(), "code", "ABCDEF123456")

		rq.True(domain.HasCode(err, errcodes.PasteServiceError))
	})
}

func TestFetchRaw(t *testing.T) {
	t.Run("fetches trimmed raw content", func(t *testing.T) {
		rq := require.New(t)

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rq.Equal("/raw/a1b2c3", r.URL.Path)

			_, _ = w.Write([]byte("SECRETCODE\n"))
		}))
		defer ts.Close()

		client := paste.NewClient(config.Paste{APIKey: "devkey", BaseURL: ts.URL}, ts.Client())

		content, err := client.FetchRaw(context.Background(), ts.URL+"/a1b2c3")

		rq.NoError(err)
		rq.Equal("SECRETCODE", content)
	})

	t.Run("foreign URL is rejected", func(t *testing.T) {
		rq := require.New(t)

		client := paste.NewClient(config.Paste{APIKey: "devkey", BaseURL: "https://paste.example"}, nil)

		_, err := client.FetchRaw(context.Background(), "https://evil.example/a1b2c3")

		rq.True(domain.HasCode(err, errcodes.InvalidURL))
	})
}
