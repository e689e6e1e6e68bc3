package utils

import (
	"testing"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/tripindex/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectOf(nwLat, nwLng, seLat, seLng float64) models.BoundingRect {
	return models.BoundingRect{
		NorthWest: models.GeoPoint{Latitude: nwLat, Longitude: nwLng},
		SouthEast: models.GeoPoint{Latitude: seLat, Longitude: seLng},
	}
}

func boxRect(hash string) models.BoundingRect {
	box := geohash.BoundingBox(hash)
	return rectOf(box.MaxLat, box.MinLng, box.MinLat, box.MaxLng)
}

func TestPrecisionForDimensions(t *testing.T) {
	tests := []struct {
		name     string
		heightKm float64
		widthKm  float64
		expected uint
	}{
		{name: "point", heightKm: 0, widthKm: 0, expected: 9},
		{name: "precision 9 boundary", heightKm: 0.0048, widthKm: 0.0048, expected: 9},
		{name: "just over precision 9", heightKm: 0.0049, widthKm: 0.001, expected: 8},
		{name: "precision 8 boundary", heightKm: 0.019, widthKm: 0.0382, expected: 8},
		{name: "wide but short", heightKm: 0.01, widthKm: 0.1, expected: 7},
		{name: "precision 6", heightKm: 0.5, widthKm: 1.1, expected: 6},
		{name: "precision 5", heightKm: 4.9, widthKm: 4.9, expected: 5},
		{name: "precision 4", heightKm: 10, widthKm: 39, expected: 4},
		{name: "precision 3", heightKm: 150, widthKm: 150, expected: 3},
		{name: "precision 2", heightKm: 600, widthKm: 1200, expected: 2},
		{name: "continent", heightKm: 700, widthKm: 100, expected: 1},
		{name: "too wide for precision 2", heightKm: 10, widthKm: 1300, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, precisionForDimensions(tt.heightKm, tt.widthKm))
		})
	}
}

func TestSmallestEncompassingPrecision(t *testing.T) {
	// about one metre square in lower Manhattan
	tiny := rectOf(40.712800, -74.006000, 40.712790, -74.005990)
	assert.Equal(t, uint(9), SmallestEncompassingPrecision(tiny))

	// antimeridian crossing wraps to a narrow span
	wrapped := rectOf(10.0, 179.99, 9.99, -179.99)
	assert.Equal(t, uint(5), SmallestEncompassingPrecision(wrapped))

	world := rectOf(80, -170, -80, 170)
	assert.Equal(t, uint(1), SmallestEncompassingPrecision(world))
}

func TestResolveCells_Manhattan(t *testing.T) {
	cells := ResolveCells(rectOf(40.782181, -73.986743, 40.725575, -73.971983))

	assert.Contains(t, cells, "dr5rs")
	assert.Contains(t, cells, "dr5ru")
}

func TestResolveCells_LowPrecisionRoot(t *testing.T) {
	cells := ResolveCells(rectOf(-22, 135, -23, 155))

	assert.Equal(t, []string{"r5", "r7", "rh", "rk"}, cells)
}

func TestResolveCells_TinyRect(t *testing.T) {
	rect := rectOf(40.7128, -74.0060, 40.71279, -74.00599)

	cells := ResolveCells(rect)

	require.Len(t, cells, 1)
	assert.Len(t, cells[0], 9)
	assert.Equal(t, EncodeGeoPoint(rect.Center(), 9), cells[0])
}

func TestResolveCells_NeverEmptyAndDistinct(t *testing.T) {
	rects := []models.BoundingRect{
		rectOf(0, 0, 0, 0),
		rectOf(89.9, -179.9, -89.9, 179.9),
		rectOf(-33.519580, 150.748331, -33.847689, 151.280739),
		rectOf(10.0, 179.99, 9.99, -179.99),
		rectOf(51.5, -0.2, 51.4, 0.1),
	}

	for _, rect := range rects {
		cells := ResolveCells(rect)
		require.NotEmpty(t, cells)

		seen := make(map[string]bool, len(cells))
		for _, c := range cells {
			assert.False(t, seen[c], "duplicate cell %s", c)
			seen[c] = true
		}
	}
}

func TestResolveCells_AntimeridianCoversBothSides(t *testing.T) {
	rect := rectOf(10.0, 179.99, 9.99, -179.99)

	cells := ResolveCells(rect)
	require.NotEmpty(t, cells)

	var east, west bool
	for _, c := range cells {
		box := geohash.BoundingBox(c)
		assert.True(t, box.MinLng >= 179.9 || box.MaxLng <= -179.9, "cell %s lng [%f, %f] is far from ±180", c, box.MinLng, box.MaxLng)
		assert.LessOrEqual(t, box.MinLat, 10.0, c)
		assert.GreaterOrEqual(t, box.MaxLat, 9.99, c)

		east = east || box.MaxLng >= 180-1e-9
		west = west || box.MinLng <= -180+1e-9
	}
	assert.True(t, east, "no cell touches +180")
	assert.True(t, west, "no cell touches -180")
}

func TestResolveCells_NorthWestOnAntimeridian(t *testing.T) {
	cells := ResolveCells(rectOf(10.0, 180, 9.99, -179.99))
	require.NotEmpty(t, cells)

	for _, c := range cells {
		assert.InDelta(t, -180.0, geohash.BoundingBox(c).MinLng, 1e-9, c)
	}
}

func TestRefineCell_CrossingRectKeepsEdgeChildren(t *testing.T) {
	rect := rectOf(10.0, 179.99, 9.99, -179.99)
	root := EncodeGeoPoint(models.GeoPoint{Latitude: 9.995, Longitude: -180}, 5)

	cells := RefineCell(root, rect)

	require.NotEqual(t, []string{root}, cells)
	for _, c := range cells {
		assert.InDelta(t, -180.0, geohash.BoundingBox(c).MinLng, 1e-9, c)
	}
}

func TestRefineCell_RemovesOutOfBoundsChildren(t *testing.T) {
	rect := rectOf(-33.519580, 150.748331, -33.847689, 151.280739)

	assert.Equal(t, []string{"r3gp", "r3gr", "r3gx"}, RefineCell("r3g", rect))
}

func TestRefineCell_HighPrecisionUnchanged(t *testing.T) {
	rect := rectOf(-33.535963, 151.184950, -33.550248, 151.199569)

	assert.Equal(t, []string{"r3grkpd"}, RefineCell("r3grkpd", rect))
}

func TestRefineCell_CellBoxReturnsCell(t *testing.T) {
	assert.Equal(t, []string{"r3gx8b"}, RefineCell("r3gx8b", boxRect("r3gx8b")))
}

func TestRefineCell_DisjointRectFallsBackToRoot(t *testing.T) {
	// the rectangle lies on the other side of the globe from the cell
	rect := rectOf(41, -74, 40, -73)

	assert.Equal(t, []string{"r3g"}, RefineCell("r3g", rect))
}

func TestEncodeGeoPoint(t *testing.T) {
	point := models.GeoPoint{Latitude: 37.79947, Longitude: 122.511635}

	assert.Equal(t, "wwxp5c4mb", EncodeGeoPoint(point, 9))
	assert.Equal(t, "wwxp", EncodeGeoPoint(point, 4))
}
