package geo

//go:generate mockgen -source=interfaces.go -destination=../mock/geo_mock.go -package=mock

import "context"

// Resolver maps geographic coordinates to an IANA timezone identifier
// (e.g. "America/New_York").
type Resolver interface {
	Resolve(ctx context.Context, latitude, longitude float64) (string, error)
}
