package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingRect_Center(t *testing.T) {
	tests := []struct {
		name     string
		rect     BoundingRect
		expected GeoPoint
		crosses  bool
	}{
		{
			name:     "plain rectangle",
			rect:     BoundingRect{NorthWest: GeoPoint{Latitude: 41, Longitude: -74}, SouthEast: GeoPoint{Latitude: 40, Longitude: -73}},
			expected: GeoPoint{Latitude: 40.5, Longitude: -73.5},
		},
		{
			name:     "crossing the antimeridian, centred on it",
			rect:     BoundingRect{NorthWest: GeoPoint{Latitude: 10, Longitude: 179}, SouthEast: GeoPoint{Latitude: 9, Longitude: -179}},
			expected: GeoPoint{Latitude: 9.5, Longitude: -180},
			crosses:  true,
		},
		{
			name:     "crossing the antimeridian, centre east of it",
			rect:     BoundingRect{NorthWest: GeoPoint{Latitude: 10, Longitude: 170}, SouthEast: GeoPoint{Latitude: 9, Longitude: -178}},
			expected: GeoPoint{Latitude: 9.5, Longitude: 176},
			crosses:  true,
		},
		{
			name:     "crossing the antimeridian, centre west of it",
			rect:     BoundingRect{NorthWest: GeoPoint{Latitude: 10, Longitude: 178}, SouthEast: GeoPoint{Latitude: 9, Longitude: -170}},
			expected: GeoPoint{Latitude: 9.5, Longitude: -176},
			crosses:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := tt.rect.Center()

			assert.InDelta(t, tt.expected.Latitude, center.Latitude, 1e-9)
			assert.InDelta(t, tt.expected.Longitude, center.Longitude, 1e-9)
			assert.Equal(t, tt.crosses, tt.rect.CrossesAntimeridian())
		})
	}
}

func TestBoundingRect_LongitudeSpan(t *testing.T) {
	assert.InDelta(t, 0.02, BoundingRect{
		NorthWest: GeoPoint{Longitude: 179.99},
		SouthEast: GeoPoint{Longitude: -179.99},
	}.LongitudeSpan(), 1e-9)
	assert.InDelta(t, 359.8, BoundingRect{
		NorthWest: GeoPoint{Longitude: -179.9},
		SouthEast: GeoPoint{Longitude: 179.9},
	}.LongitudeSpan(), 1e-9)
}
