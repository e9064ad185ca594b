package paste

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"rewardbot/internal/config"
	"rewardbot/internal/domain"
	"rewardbot/pkg/errcodes"
)

// Client talks to the paste-hosting API: one POST to create a paste, one GET
// to fetch its raw content. No retries; failures surface as coded errors.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg config.Paste, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// Create submits content as a new unlisted paste expiring in 10 minutes and
// returns the paste URL.
func (c *Client) Create(ctx context.Context, title, content string) (string, error) {
	form := url.Values{
		"api_dev_key":           {c.apiKey},
		"api_option":            {"paste"},
		"api_paste_code":        {content},
		"api_paste_name":        {title},
		"api_paste_format":      {"text"},
		"api_paste_private":     {"1"},
		"api_paste_expire_date": {"10M"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/api_post.php", strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.WrapError(err, errcodes.PasteServiceError, "failed to build paste request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(err, errcodes.PasteServiceError, "paste service unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.WrapError(err, errcodes.PasteServiceError, "failed to read paste response")
	}

	// The API signals errors with a 200 and a "Bad API request..." body, so
	// the only reliable success marker is a returned paste URL.
	pasteURL := strings.TrimSpace(string(body))
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(pasteURL, c.baseURL+"/") {
		return "", domain.NewError(errcodes.PasteServiceError,
			fmt.Sprintf("paste service rejected request: %s", pasteURL))
	}

	return pasteURL, nil
}

// FetchRaw downloads the raw content of a previously created paste.
func (c *Client) FetchRaw(ctx context.Context, pasteURL string) (string, error) {
	id, ok := strings.CutPrefix(pasteURL, c.baseURL+"/")
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", domain.NewError(errcodes.InvalidURL,
			fmt.Sprintf("not a paste URL: %s", pasteURL))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/raw/"+id, http.NoBody)
	if err != nil {
		return "", domain.WrapError(err, errcodes.PasteServiceError, "failed to build raw request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(err, errcodes.PasteServiceError, "paste service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewError(errcodes.PasteServiceError,
			fmt.Sprintf("unexpected status %d fetching raw paste", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.WrapError(err, errcodes.PasteServiceError, "failed to read raw paste")
	}

	return strings.TrimSpace(string(body)), nil
}
