package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the full resty API stays reachable
// while application-specific behavior can be layered on top.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with default resty settings
// and its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
