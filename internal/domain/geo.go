package domain

// GeoCoordinate is a map pin derived from geocoding a delivery address.
// It is ephemeral: owned by the screen showing the delivery, recomputed
// on every detail view and never persisted.
type GeoCoordinate struct {
	Latitude  float64
	Longitude float64
}
