package distance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

var (
	testOrigin      = domain.Coordinates{Lat: -22.9068, Lon: -43.1729}
	testDestination = domain.Coordinates{Lat: -23.5505, Lon: -46.6333}
)

func TestDelegateDistanceKm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/calculate-distance" {
			t.Errorf("path = %s, want /calculate-distance", r.URL.Path)
		}

		var payload delegatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.Origin != testOrigin || payload.Destination != testDestination {
			t.Errorf("payload = %+v", payload)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"origin":      payload.Origin,
			"destination": payload.Destination,
			"distance_km": 357.8,
		})
	}))
	defer server.Close()

	provider, err := NewDelegateProvider(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	km, err := provider.DistanceKm(context.Background(), testOrigin, testDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 357.8 {
		t.Errorf("distance = %v, want 357.8", km)
	}
}

func TestDelegateNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider, _ := NewDelegateProvider(server.URL)

	_, err := provider.DistanceKm(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestDelegateMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"origin": {}, "destination": {}}`))
	}))
	defer server.Close()

	provider, _ := NewDelegateProvider(server.URL)

	_, err := provider.DistanceKm(context.Background(), testOrigin, testDestination)
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestDelegateEmptyBaseURL(t *testing.T) {
	if _, err := NewDelegateProvider("  "); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestLocalProviderMatchesHaversine(t *testing.T) {
	provider := NewLocalProvider()

	km, err := provider.DistanceKm(context.Background(), testOrigin, testDestination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := domain.HaversineKm(testOrigin, testDestination); km != want {
		t.Errorf("distance = %v, want %v", km, want)
	}
}
