package webapi

import (
	"net/http"

	"golang.org/x/oauth2"
)

// BearerClient returns an HTTP client that stamps
// "Authorization: Bearer <token>" on every request sent through base.
// The token is used as-is; it is never refreshed.
func BearerClient(token string, base http.RoundTripper) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: token,
				TokenType:   "Bearer",
			}),
			Base: base,
		},
	}
}
