package models

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// BoundingRect is a search area given by its north-west and south-east corners
type BoundingRect struct {
	NorthWest GeoPoint `json:"nw"`
	SouthEast GeoPoint `json:"se"`
}

// CrossesAntimeridian reports whether the rectangle runs east from its north-west
// corner across longitude ±180
func (r BoundingRect) CrossesAntimeridian() bool {
	return r.SouthEast.Longitude < r.NorthWest.Longitude
}

// LongitudeSpan returns the eastward extent in degrees, wrapped across ±180
func (r BoundingRect) LongitudeSpan() float64 {
	span := r.SouthEast.Longitude - r.NorthWest.Longitude
	if span < 0 {
		span += 360
	}
	return span
}

// Center returns the midpoint of the rectangle, with the longitude normalised into [-180, 180)
func (r BoundingRect) Center() GeoPoint {
	lng := r.NorthWest.Longitude + r.LongitudeSpan()/2
	if lng >= 180 {
		lng -= 360
	}
	return GeoPoint{
		Latitude:  (r.NorthWest.Latitude + r.SouthEast.Latitude) / 2,
		Longitude: lng,
	}
}
