package data_adaptor

import (
	"net"
	"net/http"
	"time"
)

const userAgent = "hk-screener/1.0"

// NewHTTPClient builds the client shared by all upstream fetchers. Timeouts
// are per request; there is no retry layer, a failed request fails the caller.
func NewHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
