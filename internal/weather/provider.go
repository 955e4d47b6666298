package weather

import "context"

// Geocoder resolves a free-text place name to location records.
//
// Implementations must convert transport failures into an empty result set
// rather than returning them: the caller treats "no results" and "lookup
// failed" identically, as a location that could not be found.
type Geocoder interface {
	Lookup(ctx context.Context, name string) []LocationMatch
}

// CurrentProvider fetches current conditions for a pair of coordinates.
// Unlike Geocoder, transport failures propagate to the caller.
type CurrentProvider interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (CurrentObservation, error)
}
