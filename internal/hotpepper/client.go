// Package hotpepper is a client for the HotPepper gourmet search API.
package hotpepper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dtroode/izakaya-server/internal/model"
)

// maxBodySize caps how much of a provider response is read.
const maxBodySize = 8 << 20

var _ model.RestaurantProvider = (*Client)(nil)

// Client calls the provider's gourmet endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Client. A zero timeout leaves requests bounded only by ctx.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type providerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type searchResponse struct {
	Results *struct {
		Shop  []model.Shop    `json:"shop"`
		Error []providerError `json:"error"`
	} `json:"results"`
}

// Search runs a geo search and returns every shop in the response.
func (c *Client) Search(ctx context.Context, params model.SearchParams) ([]model.Shop, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("lat", params.Latitude)
	q.Set("lng", params.Longitude)
	q.Set("range", strconv.Itoa(params.Range))
	q.Set("format", "json")

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed search payload: %v", model.ErrUpstream, err)
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: search payload has no results", model.ErrUpstream)
	}
	if len(resp.Results.Error) > 0 {
		e := resp.Results.Error[0]
		return nil, fmt.Errorf("%w: provider error %d: %s", model.ErrUpstream, e.Code, e.Message)
	}

	return resp.Results.Shop, nil
}

// Lookup fetches a single shop by id and returns the provider document as is.
func (c *Client) Lookup(ctx context.Context, id string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("id", id)
	q.Set("format", "json")

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: lookup payload is not json", model.ErrUpstream)
	}

	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, query url.Values) ([]byte, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base url: %v", model.ErrUpstream, err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", model.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", model.ErrUpstream, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", model.ErrUpstream, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", model.ErrUpstream, res.StatusCode)
	}

	return body, nil
}
