package delegateapi

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/calculate-distance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)
	return rec
}

func TestCalculateDistance(t *testing.T) {
	rec := post(t, `{
		"origin": {"lat": -22.9068, "lon": -43.1729},
		"destination": {"lat": -23.5505, "lon": -46.6333}
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res calculateResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if math.Abs(res.DistanceKm-357.8) > 1.0 {
		t.Errorf("distance = %v, want 357.8 +/- 1.0", res.DistanceKm)
	}
	if res.Origin.Lat != -22.9068 || res.Destination.Lon != -46.6333 {
		t.Errorf("echoed coordinates wrong: %+v", res)
	}
}

func TestCalculateDistanceSamePoint(t *testing.T) {
	rec := post(t, `{
		"origin": {"lat": -22.9068, "lon": -43.1729},
		"destination": {"lat": -22.9068, "lon": -43.1729}
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var res calculateResponse
	json.NewDecoder(rec.Body).Decode(&res)
	if res.DistanceKm != 0.0 {
		t.Errorf("distance = %v, want 0.0", res.DistanceKm)
	}
}

func TestCalculateDistanceMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing destination", `{"origin": {"lat": 1, "lon": 2}}`},
		{"missing lon", `{"origin": {"lat": 1}, "destination": {"lat": 3, "lon": 4}}`},
		{"non-numeric lat", `{"origin": {"lat": "x", "lon": 2}, "destination": {"lat": 3, "lon": 4}}`},
		{"not json", `not json`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if rec := post(t, c.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestDelegateHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	NewRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
