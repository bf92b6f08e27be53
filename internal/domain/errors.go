package domain

import "errors"

// Sentinel errors for the pipeline and the record store. Adapters wrap these
// with context; handlers map them to HTTP statuses with errors.Is.
var (
	ErrMissingInput        = errors.New("origin and destination postal codes are required")
	ErrInvalidPostalCode   = errors.New("postal code not found")
	ErrGeocodeNotFound     = errors.New("address could not be geocoded")
	ErrInvalidCoordinate   = errors.New("invalid latitude/longitude value")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrNotFound            = errors.New("record not found")
)
