package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/logx"
)

type counter interface {
	Inc()
}

// geocodeResponse mirrors the provider's JSON. An empty results list
// is a valid response meaning "no coordinate".
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
}

// Client resolves structured postal addresses to coordinates for map
// display. It is best-effort enrichment: every failure mode degrades
// to "no coordinate", logged but never surfaced, and nothing here may
// block the confirmation workflow.
type Client struct {
	baseURL  string
	key      string
	httpc    *http.Client
	logger   logx.Logger
	failures counter
}

// NewClient creates a geocoding client for an OpenCage-style provider.
func NewClient(baseURL, key string, httpc *http.Client, logger logx.Logger, failures counter) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		key:      key,
		httpc:    httpc,
		logger:   logger,
		failures: failures,
	}
}

// Resolve turns an address into a coordinate, or nil when the provider
// cannot place it. No retries.
func (c *Client) Resolve(ctx context.Context, addr domain.Address) *domain.GeoCoordinate {
	q := url.Values{}
	q.Set("q", freeTextQuery(addr))
	q.Set("key", c.key)

	reqURL := c.baseURL + "/geocode/v1/json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return c.miss("build geocode request", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return c.miss("geocode request failed", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return c.miss("geocode unexpected status", fmt.Errorf("status %d", resp.StatusCode))
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.miss("geocode malformed response", err)
	}
	if len(body.Results) == 0 {
		return c.miss("geocode no results", nil)
	}

	g := body.Results[0].Geometry
	coord := &domain.GeoCoordinate{Latitude: g.Lat, Longitude: g.Lng}
	c.logger.Debug("address resolved",
		logx.Float64("lat", coord.Latitude),
		logx.Float64("lng", coord.Longitude),
	)
	return coord
}

func (c *Client) miss(msg string, err error) *domain.GeoCoordinate {
	if c.failures != nil {
		c.failures.Inc()
	}
	if err != nil {
		c.logger.Warn(msg, logx.Any("err", err))
	} else {
		c.logger.Warn(msg)
	}
	return nil
}

// freeTextQuery builds the single-line query the provider expects:
// "street, number neighborhood, city - state, cep".
func freeTextQuery(a domain.Address) string {
	return fmt.Sprintf("%s, %s %s, %s - %s, %s",
		a.Street, a.Number, a.Neighborhood, a.City, a.State, a.CEP)
}
