package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "cep-distance/1.0 (+https://github.com/HelioOssola/cep-distance)"
	querySeparator   = ", "
)

// Client geocodes free-text address queries with Nominatim/OSM, restricting
// results to a single best match within Brazil.
type Client struct {
	baseURL      string
	userAgent    string
	countryCodes string
	session      *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		userAgent:    userAgent,
		countryCodes: "br",
		session:      &http.Client{Timeout: 15 * time.Second},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves the query to a coordinate pair.
//
// Postal lookups return structured but sometimes house-level addresses the
// geocoder cannot match. When the full query misses and it splits into at
// least 3 comma-separated segments, the last three are rejoined (roughly
// "city, state, country") and tried once more before giving up with
// domain.ErrGeocodeNotFound.
func (c *Client) Geocode(ctx context.Context, query string) (domain.Coordinates, error) {
	coords, found, err := c.search(ctx, query)
	if err != nil {
		return domain.Coordinates{}, err
	}
	if found {
		return coords, nil
	}

	segments := splitQuery(query)
	if len(segments) >= 3 {
		fallback := strings.Join(segments[len(segments)-3:], querySeparator)
		coords, found, err = c.search(ctx, fallback)
		if err != nil {
			return domain.Coordinates{}, err
		}
		if found {
			return coords, nil
		}
	}

	return domain.Coordinates{}, fmt.Errorf("nominatim: query %q: %w", query, domain.ErrGeocodeNotFound)
}

func splitQuery(query string) []string {
	parts := strings.Split(query, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func (c *Client) search(ctx context.Context, query string) (domain.Coordinates, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search", nil)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("nominatim: create request: %w", err)
	}

	params := req.URL.Query()
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "0")
	params.Set("countrycodes", c.countryCodes)
	req.URL.RawQuery = params.Encode()

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("nominatim: %v: %w", err, domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, false, fmt.Errorf("nominatim: HTTP %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("nominatim: decode response: %w", domain.ErrUpstreamUnavailable)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, false, nil
	}

	// Nominatim serializes coordinates as strings.
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("nominatim: lat %q: %w", results[0].Lat, domain.ErrInvalidCoordinate)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("nominatim: lon %q: %w", results[0].Lon, domain.ErrInvalidCoordinate)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}
