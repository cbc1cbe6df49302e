package irisctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"irisd/pkg/types"
)

// Client is a thin HTTP client for a running irisd server.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient creates a client against base (e.g. http://127.0.0.1:8080).
func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

// Predict posts one measurement vector and returns the server's prediction.
func (c *Client) Predict(ctx context.Context, req types.PredictRequest) (types.PredictResponse, error) {
	var out types.PredictResponse
	body, err := json.Marshal(req)
	if err != nil {
		return out, err
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/predict", bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	hreq.Header.Set("Content-Type", "application/json")
	err = c.do(hreq, &out)
	return out, err
}

// Models fetches the artifact registry.
func (c *Client) Models(ctx context.Context) (types.ModelsResponse, error) {
	var out types.ModelsResponse
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/models", nil)
	if err != nil {
		return out, err
	}
	err = c.do(hreq, &out)
	return out, err
}

// Status fetches the service status document.
func (c *Client) Status(ctx context.Context) (types.StatusResponse, error) {
	var out types.StatusResponse
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/status", nil)
	if err != nil {
		return out, err
	}
	err = c.do(hreq, &out)
	return out, err
}

// Ready probes /readyz and returns the body text (ready or loading).
func (c *Client) Ready(ctx context.Context) (string, bool, error) {
	hreq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/readyz", nil)
	if err != nil {
		return "", false, err
	}
	resp, err := c.hc.Do(hreq)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(string(b)), resp.StatusCode == http.StatusOK, nil
}

// do executes the request and decodes a JSON body, translating the server's
// error payload into a Go error.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var e types.ErrorResponse
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return fmt.Errorf("server: %s (%d)", e.Error, e.Code)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return json.Unmarshal(body, out)
}
