// Package supabase is a thin REST client for a Supabase-style backend:
// a GoTrue-compatible identity issuer plus a PostgREST row API. The
// backend owns authorization; this package only carries the caller's
// credential to it.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spec-kit/course-gateway/internal/config"
)

// Factory builds identity-scoped clients. It holds only immutable
// coordinates and a shared transport; no session state lives here.
type Factory struct {
	cfg  config.SupabaseConfig
	http *http.Client
}

// NewFactory constructs the factory from backend coordinates.
func NewFactory(cfg config.SupabaseConfig) *Factory {
	return &Factory{cfg: cfg, http: &http.Client{}}
}

// Anonymous returns a handle carrying only public privileges.
func (f *Factory) Anonymous() *Client {
	return f.WithToken("")
}

// WithToken returns a fresh handle bound to the given bearer token.
// Handles must be built per request and never cached or shared between
// callers; the token is the handle's only identity state.
func (f *Factory) WithToken(token string) *Client {
	return &Client{cfg: f.cfg, token: token, http: f.http}
}

// Client is a backend handle scoped to at most one caller identity.
type Client struct {
	cfg   config.SupabaseConfig
	token string
	http  *http.Client
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, header http.Header, in, out any) error {
	endpoint := c.cfg.URL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	// The apikey header routes the request; Authorization decides what
	// rows the backend lets it touch.
	req.Header.Set("apikey", c.cfg.AnonKey)
	bearer := c.cfg.AnonKey
	if c.token != "" {
		bearer = c.token
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Health pings the issuer's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/auth/v1/health", nil, nil, nil, nil)
}
