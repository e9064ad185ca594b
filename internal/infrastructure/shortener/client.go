package shortener

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"rewardbot/internal/config"
	"rewardbot/internal/domain"
	"rewardbot/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Client wraps the link-shortening API: a single GET whose token is injected
// by the transport's APIKeyRoundTripper.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.Shortener, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

type shortenResponse struct {
	Status       string `json:"status"`
	ShortenedURL string `json:"shortenedUrl"`
	Message      string `json:"message"`
}

// Shorten returns a shortened URL for longURL.
func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	endpoint := fmt.Sprintf("%s/QL_api.php?format=json&url=%s",
		c.baseURL, url.QueryEscape(longURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", domain.WrapError(err, errcodes.ShortenerServiceError, "failed to build shorten request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(err, errcodes.ShortenerServiceError, "shortener unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewError(errcodes.ShortenerServiceError,
			fmt.Sprintf("unexpected status %d from shortener", resp.StatusCode))
	}

	var result shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", domain.WrapError(err, errcodes.ShortenerServiceError, "failed to decode shortener response")
	}

	if result.Status != "success" || result.ShortenedURL == "" {
		message := result.Message
		if message == "" {
			message = "unknown API error"
		}
		return "", domain.NewError(errcodes.ShortenerServiceError,
			fmt.Sprintf("shortener rejected request: %s", message))
	}

	return result.ShortenedURL, nil
}
