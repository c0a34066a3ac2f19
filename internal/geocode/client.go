package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/voyago/travelsearch/internal/models"
	"github.com/voyago/travelsearch/internal/ratelimit"
)

// Client queries a geocoding endpoint of the open-data style: GET ?name=X
// returning a results array of {name, country, latitude, longitude}.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.UpstreamLimiter
}

func NewClient(baseURL string, limiter *ratelimit.UpstreamLimiter) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: limiter,
	}
}

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

func (c *Client) Lookup(ctx context.Context, name string) (*models.Location, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, "geocode"); err != nil {
			return nil, err
		}
	}

	u := fmt.Sprintf("%s/v1/search?name=%s&count=1", c.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request failed: %s", resp.Status)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("no geocode results for %q", name)
	}

	hit := body.Results[0]
	return &models.Location{
		ID:      synthesizeID(hit.Name),
		Name:    hit.Name,
		City:    hit.Name,
		Country: hit.Country,
		Type:    models.LocationCity,
		Coordinates: models.Coordinates{
			Latitude:  hit.Latitude,
			Longitude: hit.Longitude,
		},
	}, nil
}

func synthesizeID(name string) string {
	id := make([]rune, 0, 3)
	for _, c := range name {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			id = append(id, c)
			if len(id) == 3 {
				break
			}
		}
	}
	if len(id) == 0 {
		return "XXX"
	}
	return string(id)
}
