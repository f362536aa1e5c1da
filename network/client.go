// Package network builds the HTTP client used for the catalog and release checks.
package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/util"
	"golang.org/x/net/http2"
)

// NewClient returns a client that retries failed requests up to retries
// times. Zero retries means a single attempt.
func NewClient(retries int, timeout time.Duration) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = leveledLogger{}
	client.RetryMax = util.Max(retries, 0)
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
	return client
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	if err := http2.ConfigureTransport(t); err != nil {
		log.Debugf("network: http2 unavailable: %s", err)
	}
	return t
}

// Get fetches url and returns the body of a 2xx response.
func Get(ctx context.Context, client *retryablehttp.Client, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// leveledLogger forwards retryablehttp messages to the application log.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...any) { log.WithFields(fields(kv)).Error(msg) }
func (leveledLogger) Warn(msg string, kv ...any) { log.WithFields(fields(kv)).Warn(msg) }
func (leveledLogger) Info(msg string, kv ...any) { log.WithFields(fields(kv)).Debug(msg) }
func (leveledLogger) Debug(msg string, kv ...any) { log.WithFields(fields(kv)).Trace(msg) }
