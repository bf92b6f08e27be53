package dto

import (
	"github.com/HelioOssola/cep-distance/internal/domain"
	"github.com/HelioOssola/cep-distance/internal/services"
)

type CreateDistanceRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Notes       *string `json:"notes"`
}

type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type AddressResponse struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type RecordResponse struct {
	ID             int64               `json:"id"`
	OriginCEP      string              `json:"origin_cep"`
	DestinationCEP string              `json:"destination_cep"`
	Origin         CoordinatesResponse `json:"origin"`
	Destination    CoordinatesResponse `json:"destination"`
	DistanceKm     float64             `json:"distance_km"`
	CreatedAt      string              `json:"created_at"`
	Notes          *string             `json:"notes"`
}

// CreateDistanceResponse is the enriched POST response: the persisted record
// plus the two resolved addresses (display only, not persisted).
type CreateDistanceResponse struct {
	RecordResponse
	OriginAddress      AddressResponse `json:"origin_address"`
	DestinationAddress AddressResponse `json:"destination_address"`
}

type ListRecordsResponse struct {
	Total int              `json:"total"`
	Items []RecordResponse `json:"items"`
}

type DeleteRecordResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

func NewRecordResponse(q *domain.DistanceQuery) RecordResponse {
	return RecordResponse{
		ID:             q.ID,
		OriginCEP:      q.OriginCEP,
		DestinationCEP: q.DestinationCEP,
		Origin:         CoordinatesResponse{Lat: q.Origin.Lat, Lon: q.Origin.Lon},
		Destination:    CoordinatesResponse{Lat: q.Destination.Lat, Lon: q.Destination.Lon},
		DistanceKm:     q.DistanceKm,
		CreatedAt:      q.CreatedAt,
		Notes:          q.Notes,
	}
}

func newAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{
		Street:       a.Street,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func NewCreateDistanceResponse(result *services.CreateResult) CreateDistanceResponse {
	return CreateDistanceResponse{
		RecordResponse:     NewRecordResponse(result.Record),
		OriginAddress:      newAddressResponse(result.OriginAddress),
		DestinationAddress: newAddressResponse(result.DestinationAddress),
	}
}
