package supabase

import (
	"context"
	"net/http"
	"net/url"
)

const (
	restPrefix = "/rest/v1/"

	// PostgREST returns a bare object instead of a one-element array.
	acceptSingleObject = "application/vnd.pgrst.object+json"

	preferRepresentation = "return=representation"
)

// Select reads all rows of a table, ordered by the given PostgREST
// order expression (e.g. "createdAt.asc").
func (c *Client) Select(ctx context.Context, table, order string, out any) error {
	query := url.Values{"select": []string{"*"}}
	if order != "" {
		query.Set("order", order)
	}
	return c.do(ctx, http.MethodGet, restPrefix+table, query, nil, nil, out)
}

// SelectOne reads a single row by primary key.
func (c *Client) SelectOne(ctx context.Context, table, id string, out any) error {
	query := url.Values{
		"select": []string{"*"},
		"id":     []string{"eq." + id},
	}
	header := http.Header{"Accept": []string{acceptSingleObject}}
	return c.do(ctx, http.MethodGet, restPrefix+table, query, header, nil, out)
}

// Insert writes a row and decodes the stored representation into out.
func (c *Client) Insert(ctx context.Context, table string, row, out any) error {
	header := http.Header{
		"Accept": []string{acceptSingleObject},
		"Prefer": []string{preferRepresentation},
	}
	return c.do(ctx, http.MethodPost, restPrefix+table, nil, header, row, out)
}

// Update patches a row by primary key and decodes the stored
// representation into out.
func (c *Client) Update(ctx context.Context, table, id string, patch, out any) error {
	query := url.Values{"id": []string{"eq." + id}}
	header := http.Header{
		"Accept": []string{acceptSingleObject},
		"Prefer": []string{preferRepresentation},
	}
	return c.do(ctx, http.MethodPatch, restPrefix+table, query, header, patch, out)
}

// Delete removes a row by primary key.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	query := url.Values{"id": []string{"eq." + id}}
	return c.do(ctx, http.MethodDelete, restPrefix+table, query, nil, nil, nil)
}
