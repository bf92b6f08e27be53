package ports

import (
	"context"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// Port: a boundary for converting a free-text address query into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (domain.Coordinates, error)
}
