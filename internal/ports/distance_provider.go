package ports

import (
	"context"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// Contract for computing the distance in kilometers between two points.
// Implementations may compute locally or delegate to a peer service.
type DistanceProvider interface {
	DistanceKm(ctx context.Context, origin, destination domain.Coordinates) (float64, error)
}
