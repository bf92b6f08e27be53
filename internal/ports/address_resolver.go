package ports

import (
	"context"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// Port: a boundary for resolving a postal code to a normalized address.
type AddressResolver interface {
	// Resolve looks the postal code up with an external service.
	Resolve(ctx context.Context, postalCode string) (domain.Address, error)
}
