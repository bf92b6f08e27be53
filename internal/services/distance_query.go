package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/HelioOssola/cep-distance/internal/domain"
	"github.com/HelioOssola/cep-distance/internal/ports"
)

// CreateResult bundles the persisted record with the resolved addresses.
// The addresses are returned for display only and are never stored.
type CreateResult struct {
	Record             *domain.DistanceQuery
	OriginAddress      domain.Address
	DestinationAddress domain.Address
}

// DistanceQueryService runs the resolution-and-computation pipeline and owns
// the lifecycle of its persisted records.
type DistanceQueryService struct {
	resolver ports.AddressResolver
	geocoder ports.Geocoder
	distance ports.DistanceProvider
	records  ports.RecordRepository
}

func NewDistanceQueryService(
	resolver ports.AddressResolver,
	geocoder ports.Geocoder,
	distance ports.DistanceProvider,
	records ports.RecordRepository,
) *DistanceQueryService {
	return &DistanceQueryService{
		resolver: resolver,
		geocoder: geocoder,
		distance: distance,
		records:  records,
	}
}

// Create runs the full pipeline:
//
//	validate -> resolve origin -> resolve destination
//	-> geocode origin -> geocode destination
//	-> compute distance -> persist -> respond
//
// Any stage failure aborts the run; persistence is the final stage, so no
// partial record is ever written.
func (s *DistanceQueryService) Create(ctx context.Context, originCEP, destinationCEP string, notes *string) (*CreateResult, error) {
	originCEP = strings.TrimSpace(originCEP)
	destinationCEP = strings.TrimSpace(destinationCEP)
	if originCEP == "" || destinationCEP == "" {
		return nil, domain.ErrMissingInput
	}

	originAddr, err := s.resolver.Resolve(ctx, originCEP)
	if err != nil {
		return nil, fmt.Errorf("resolve origin: %w", err)
	}
	destAddr, err := s.resolver.Resolve(ctx, destinationCEP)
	if err != nil {
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	originCoords, err := s.geocoder.Geocode(ctx, originAddr.BuildQuery())
	if err != nil {
		return nil, fmt.Errorf("geocode origin: %w", err)
	}
	destCoords, err := s.geocoder.Geocode(ctx, destAddr.BuildQuery())
	if err != nil {
		return nil, fmt.Errorf("geocode destination: %w", err)
	}

	km, err := s.distance.DistanceKm(ctx, originCoords, destCoords)
	if err != nil {
		return nil, fmt.Errorf("compute distance: %w", err)
	}

	record := &domain.DistanceQuery{
		OriginCEP:      originCEP,
		DestinationCEP: destinationCEP,
		Origin:         originCoords,
		Destination:    destCoords,
		DistanceKm:     domain.RoundKm(km),
		Notes:          notes,
	}
	if _, err := s.records.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("persist record: %w", err)
	}

	return &CreateResult{
		Record:             record,
		OriginAddress:      originAddr,
		DestinationAddress: destAddr,
	}, nil
}

func (s *DistanceQueryService) Get(ctx context.Context, id int64) (*domain.DistanceQuery, error) {
	return s.records.Get(ctx, id)
}

func (s *DistanceQueryService) List(ctx context.Context, limit, offset int) ([]*domain.DistanceQuery, error) {
	return s.records.List(ctx, limit, offset)
}

func (s *DistanceQueryService) UpdateNotes(ctx context.Context, id int64, notes *string) (*domain.DistanceQuery, error) {
	return s.records.UpdateNotes(ctx, id, notes)
}

func (s *DistanceQueryService) Delete(ctx context.Context, id int64) error {
	return s.records.Delete(ctx, id)
}

func (s *DistanceQueryService) ListAll(ctx context.Context) ([]*domain.DistanceQuery, error) {
	return s.records.ListAll(ctx)
}
