package httpclient

import (
	"net/http"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultTimeout = 10 * time.Second

// NewDefaultHTTPClient returns an *http.Client with a bounded timeout, so a
// catalog refresh can't hang the terminal.
func NewDefaultHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
