// Package apiclient is an HTTP client for a deployed jobfeed API. The
// proxy command uses it to serve MCP tools backed by a remote instance
// instead of the local engine.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jobfeedhq/jobfeed/internal/model"
	"github.com/jobfeedhq/jobfeed/internal/query"
)

// Client talks to a remote jobfeed HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the API at baseURL (no trailing slash needed).
func New(baseURL string, client *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Search queries /jobs/search. Only the filters actually set are sent,
// so the remote keeps absent and false booleans distinct.
func (c *Client) Search(ctx context.Context, crit query.Criteria) (any, error) {
	params := url.Values{}
	if crit.Query != "" {
		params.Set("query", crit.Query)
	}
	if crit.Location != "" {
		params.Set("location", crit.Location)
	}
	if crit.Remote != nil {
		params.Set("remote", strconv.FormatBool(*crit.Remote))
	}
	if crit.VisaSponsorship != nil {
		params.Set("visa_sponsorship", strconv.FormatBool(*crit.VisaSponsorship))
	}
	if crit.ExperienceLevel != "" {
		params.Set("experience_level", crit.ExperienceLevel)
	}
	return c.get(ctx, "/jobs/search", params)
}

// JobByID queries /jobs/{id}. A remote 404 maps back to NotFoundError so
// the tool surface renders the same not-found message as a local lookup.
func (c *Client) JobByID(ctx context.Context, id string) (any, error) {
	if id == "" {
		return nil, &model.InvalidArgumentError{Field: "job_id", Reason: "must not be empty"}
	}
	return c.get(ctx, "/jobs/"+url.PathEscape(id), nil)
}

func (c *Client) ListAll(ctx context.Context) (any, error) {
	return c.get(ctx, "/jobs", nil)
}

func (c *Client) Companies(ctx context.Context) (any, error) {
	return c.get(ctx, "/companies", nil)
}

func (c *Client) Technologies(ctx context.Context) (any, error) {
	return c.get(ctx, "/technologies", nil)
}

// get performs one GET and returns the raw JSON body, which re-indents
// cleanly when the tool layer marshals it.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &model.DataSourceError{Source: u, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &model.DataSourceError{Source: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &model.NotFoundError{ID: lastPathSegment(path)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &model.DataSourceError{Source: u, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.DataSourceError{Source: u, Err: err}
	}
	if !json.Valid(body) {
		return nil, &model.DataSourceError{Source: u, Err: fmt.Errorf("invalid JSON response")}
	}

	return json.RawMessage(body), nil
}

func lastPathSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		seg, err := url.PathUnescape(path[i+1:])
		if err == nil {
			return seg
		}
		return path[i+1:]
	}
	return path
}
