package hiringlab

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Fetcher downloads one remote file
type Fetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

type ClientOptions struct {
	RetryMax int
	Timeout  time.Duration
}

func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		RetryMax: 3,
		Timeout:  30 * time.Second,
	}
}

type client struct {
	http *retryablehttp.Client
}

// NewClient returns a Fetcher that retries transient failures
func NewClient(opts ClientOptions) Fetcher {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.RetryMax = opts.RetryMax
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.HTTPClient.Timeout = opts.Timeout
	return &client{http: retryClient}
}

func (c *client) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}
