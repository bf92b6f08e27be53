package domain

// DistanceQuery is the persisted outcome of one completed pipeline run.
//
// The identifier is assigned once by the store and never changes. Coordinate
// pairs and the computed distance are immutable after creation; only Notes may
// be replaced later. CreatedAt is set server-side at insertion time,
// ISO-8601 UTC with second precision and a trailing Z.
type DistanceQuery struct {
	ID             int64
	OriginCEP      string
	DestinationCEP string
	Origin         Coordinates
	Destination    Coordinates
	DistanceKm     float64
	CreatedAt      string
	Notes          *string
}
