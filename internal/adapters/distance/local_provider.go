package distance

import (
	"context"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// LocalProvider computes the haversine distance in-process.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider { return &LocalProvider{} }

func (*LocalProvider) DistanceKm(_ context.Context, origin, destination domain.Coordinates) (float64, error) {
	return domain.HaversineKm(origin, destination), nil
}
