package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/HelioOssola/cep-distance/internal/adapters/repositories"
	"github.com/HelioOssola/cep-distance/internal/domain"
)

type fakeResolver struct {
	addresses map[string]domain.Address
	calls     int
}

func (f *fakeResolver) Resolve(_ context.Context, postalCode string) (domain.Address, error) {
	f.calls++
	addr, ok := f.addresses[postalCode]
	if !ok {
		return domain.Address{}, fmt.Errorf("resolver: cep %q: %w", postalCode, domain.ErrInvalidPostalCode)
	}
	return addr, nil
}

type fakeGeocoder struct {
	coords  map[string]domain.Coordinates
	queries []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, query string) (domain.Coordinates, error) {
	f.queries = append(f.queries, query)
	c, ok := f.coords[query]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocoder: %q: %w", query, domain.ErrGeocodeNotFound)
	}
	return c, nil
}

type fakeDistance struct{ km float64 }

func (f *fakeDistance) DistanceKm(_ context.Context, _, _ domain.Coordinates) (float64, error) {
	return f.km, nil
}

func newPipelineFixture(km float64) (*DistanceQueryService, *fakeGeocoder, *repositories.MemoryRecordRepository) {
	resolver := &fakeResolver{addresses: map[string]domain.Address{
		"01001-000": {Street: "Praça da Sé", Neighborhood: "Sé", City: "São Paulo", State: "SP"},
		"20040-020": {Street: "Avenida Rio Branco", City: "Rio de Janeiro", State: "RJ"},
	}}
	geocoder := &fakeGeocoder{coords: map[string]domain.Coordinates{
		"Praça da Sé, Sé, São Paulo, SP, Brazil":         {Lat: -23.5505, Lon: -46.6333},
		"Avenida Rio Branco, Rio de Janeiro, RJ, Brazil": {Lat: -22.9068, Lon: -43.1729},
	}}
	repo := repositories.NewMemoryRecordRepository()
	svc := NewDistanceQueryService(resolver, geocoder, &fakeDistance{km: km}, repo)
	return svc, geocoder, repo
}

func TestCreateMissingInput(t *testing.T) {
	svc, _, repo := newPipelineFixture(357.8)

	cases := []struct{ origin, destination string }{
		{"", "20040-020"},
		{"01001-000", ""},
		{"   ", "20040-020"},
	}

	for _, c := range cases {
		_, err := svc.Create(context.Background(), c.origin, c.destination, nil)
		if !errors.Is(err, domain.ErrMissingInput) {
			t.Errorf("Create(%q, %q) error = %v, want ErrMissingInput", c.origin, c.destination, err)
		}
	}

	records, _ := repo.ListAll(context.Background())
	if len(records) != 0 {
		t.Errorf("no record may be persisted on validation failure, got %d", len(records))
	}
}

func TestCreateSuccess(t *testing.T) {
	svc, geocoder, repo := newPipelineFixture(357.84215)

	notes := "demo"
	result, err := svc.Create(context.Background(), "01001-000", "20040-020", &notes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := result.Record
	if rec.ID != 1 {
		t.Errorf("id = %d, want 1", rec.ID)
	}
	if rec.DistanceKm != 357.842 {
		t.Errorf("distance = %v, want rounded 357.842", rec.DistanceKm)
	}
	if rec.CreatedAt == "" {
		t.Error("created_at not set")
	}
	if rec.Notes == nil || *rec.Notes != notes {
		t.Errorf("notes = %v, want %q", rec.Notes, notes)
	}

	if result.OriginAddress.City != "São Paulo" || result.DestinationAddress.City != "Rio de Janeiro" {
		t.Errorf("addresses not returned: %+v / %+v", result.OriginAddress, result.DestinationAddress)
	}

	if len(geocoder.queries) != 2 {
		t.Fatalf("expected 2 geocode calls, got %d", len(geocoder.queries))
	}
	if geocoder.queries[0] != "Praça da Sé, Sé, São Paulo, SP, Brazil" {
		t.Errorf("origin query = %q", geocoder.queries[0])
	}

	stored, err := repo.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("record not persisted: %v", err)
	}
	if stored.DistanceKm != rec.DistanceKm || stored.Origin != rec.Origin {
		t.Errorf("stored record differs: %+v", stored)
	}
}

func TestCreateResolverFailureAbortsPipeline(t *testing.T) {
	svc, geocoder, repo := newPipelineFixture(357.8)

	_, err := svc.Create(context.Background(), "99999-999", "20040-020", nil)
	if !errors.Is(err, domain.ErrInvalidPostalCode) {
		t.Fatalf("error = %v, want ErrInvalidPostalCode", err)
	}

	if len(geocoder.queries) != 0 {
		t.Errorf("geocoder must not run after resolve failure, got %d calls", len(geocoder.queries))
	}
	records, _ := repo.ListAll(context.Background())
	if len(records) != 0 {
		t.Errorf("no record may be persisted on failure, got %d", len(records))
	}
}

func TestCreateGeocodeFailureAbortsPipeline(t *testing.T) {
	svc, geocoder, repo := newPipelineFixture(357.8)
	delete(geocoder.coords, "Avenida Rio Branco, Rio de Janeiro, RJ, Brazil")

	_, err := svc.Create(context.Background(), "01001-000", "20040-020", nil)
	if !errors.Is(err, domain.ErrGeocodeNotFound) {
		t.Fatalf("error = %v, want ErrGeocodeNotFound", err)
	}

	records, _ := repo.ListAll(context.Background())
	if len(records) != 0 {
		t.Errorf("no record may be persisted on failure, got %d", len(records))
	}
}
