package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper injects a static token into the request query string.
// The shortener API authenticates every call this way.
type APIKeyRoundTripper struct {
	next  http.RoundTripper
	param string
	token string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	param string,
	token string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:  next,
		param: param,
		token: token,
	}
}

// RoundTrip implements http.RoundTripper interface.
func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	q := req.URL.Query()
	q.Set(rt.param, rt.token)
	req.URL.RawQuery = q.Encode()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
