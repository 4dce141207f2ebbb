package qrcode

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultSize     = "100x100"
	DefaultTimeout  = 10 * time.Second
)

// Client asks a remote QR-image service for an image of a payload.
type Client struct {
	endpoint string
	size     string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		endpoint: endpoint,
		size:     DefaultSize,
		http:     &http.Client{Timeout: timeout},
	}
}

// ImageURL builds the request URL for text without contacting the service.
func (c *Client) ImageURL(text string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("data", text)
	q.Set("size", c.size)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// GenerateURL checks that the service renders text and returns the final
// image URL, following redirects.
func (c *Client) GenerateURL(ctx context.Context, text string) (string, error) {
	imageURL, err := c.ImageURL(text)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request qr image: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("qr service responded %s", resp.Status)
	}

	return resp.Request.URL.String(), nil
}
