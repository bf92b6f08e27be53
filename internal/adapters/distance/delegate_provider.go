package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// DelegateProvider sends both coordinate pairs to a peer service and trusts
// its answer. The peer speaks the cmd/distanced wire contract:
//
//	POST {base}/calculate-distance
//	{"origin":{"lat","lon"},"destination":{"lat","lon"}}
//	-> {"origin":..., "destination":..., "distance_km":...}
//
// A non-200 response or a malformed body surfaces as
// domain.ErrUpstreamUnavailable; the call is never retried.
type DelegateProvider struct {
	baseURL string
	session *http.Client
}

func NewDelegateProvider(baseURL string) (*DelegateProvider, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("distance delegate: base URL is empty")
	}

	return &DelegateProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type delegatePayload struct {
	Origin      domain.Coordinates `json:"origin"`
	Destination domain.Coordinates `json:"destination"`
}

type delegateResponse struct {
	Origin      domain.Coordinates `json:"origin"`
	Destination domain.Coordinates `json:"destination"`
	DistanceKm  *float64           `json:"distance_km"`
}

func (d *DelegateProvider) DistanceKm(ctx context.Context, origin, destination domain.Coordinates) (float64, error) {
	body, err := json.Marshal(delegatePayload{Origin: origin, Destination: destination})
	if err != nil {
		return 0, fmt.Errorf("distance delegate: encode payload: %w", err)
	}

	endpoint := d.baseURL + "/calculate-distance"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("distance delegate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := d.session.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance delegate: %v: %w", err, domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Keep the remote error text for diagnostics.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("distance delegate: HTTP %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(detail)), domain.ErrUpstreamUnavailable)
	}

	var decoded delegateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("distance delegate: decode response: %w", domain.ErrUpstreamUnavailable)
	}
	if decoded.DistanceKm == nil {
		return 0, fmt.Errorf("distance delegate: response missing distance_km: %w", domain.ErrUpstreamUnavailable)
	}

	return *decoded.DistanceKm, nil
}
