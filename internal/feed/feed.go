package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jobfeedhq/jobfeed/internal/model"
)

// feedResponse is the top-level shape of the upstream feed document.
type feedResponse struct {
	Jobs []model.Job `json:"jobs"`
}

// Client fetches the posting set from a JSON feed URL.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a feed client. The http.Client's Timeout bounds the
// fetch; the caller configures it (default 10s).
func NewClient(url string, client *http.Client) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

// FetchJobs performs one GET against the feed URL and decodes the jobs
// array. Every failure mode is reported as a DataSourceError.
func (c *Client) FetchJobs(ctx context.Context) ([]model.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &model.DataSourceError{Source: c.url, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &model.DataSourceError{Source: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.DataSourceError{Source: c.url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var fr feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, &model.DataSourceError{Source: c.url, Err: err}
	}

	return fr.Jobs, nil
}
