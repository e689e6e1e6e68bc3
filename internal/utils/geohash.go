package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/tripindex/internal/pkg/models"
)

// DegToKm is the length in kilometres of one degree of arc on the mean earth radius
const DegToKm = 111.19492664455873

// refineBelowPrecision is the cell length from which children are no longer examined
const refineBelowPrecision = 7

// base32 is the geohash alphabet in child order
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// precisionBounds are the largest cell dimensions, in km, of each geohash length, finest first
var precisionBounds = []struct {
	precision uint
	heightKm  float64
	widthKm   float64
}{
	{9, 0.0048, 0.0048},
	{8, 0.019, 0.0382},
	{7, 0.1524, 0.1529},
	{6, 0.6094, 1.2},
	{5, 4.9, 4.9},
	{4, 19.5, 39.1},
	{3, 156, 156.5},
	{2, 624.1, 1252.3},
}

// EncodeGeoPoint converts a point to a geohash string
func EncodeGeoPoint(point models.GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// ResolveCells returns the geohash cells that approximately cover rect.
// The result is never empty and holds no duplicates. A rectangle crossing
// longitude ±180 is resolved as its two halves, since no cell spans the line.
func ResolveCells(rect models.BoundingRect) []string {
	if !rect.CrossesAntimeridian() {
		return resolveRect(rect)
	}

	east, west := splitAtAntimeridian(rect)
	cells := resolveRect(west)
	if east.NorthWest.Longitude < 180 {
		cells = appendDistinct(resolveRect(east), cells...)
	}
	return cells
}

func resolveRect(rect models.BoundingRect) []string {
	root := EncodeGeoPoint(rect.Center(), SmallestEncompassingPrecision(rect))
	return RefineCell(root, rect)
}

// splitAtAntimeridian cuts a crossing rectangle into its parts east of the
// north-west corner up to 180 and west of the south-east corner from -180
func splitAtAntimeridian(rect models.BoundingRect) (east, west models.BoundingRect) {
	east, west = rect, rect
	east.SouthEast.Longitude = 180
	west.NorthWest.Longitude = -180
	return east, west
}

func appendDistinct(cells []string, more ...string) []string {
	seen := make(map[string]struct{}, len(cells)+len(more))
	for _, c := range cells {
		seen[c] = struct{}{}
	}
	for _, c := range more {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			cells = append(cells, c)
		}
	}
	return cells
}

// SmallestEncompassingPrecision returns the length of the smallest geohash cell
// whose nominal dimensions hold the rectangle.
func SmallestEncompassingPrecision(rect models.BoundingRect) uint {
	height, width := rectDimensionsKm(rect)
	return precisionForDimensions(height, width)
}

func precisionForDimensions(heightKm, widthKm float64) uint {
	for _, b := range precisionBounds {
		if heightKm <= b.heightKm && widthKm <= b.widthKm {
			return b.precision
		}
	}
	return 1
}

// rectDimensionsKm converts the rectangle extent to kilometres. Longitude span
// wraps across the antimeridian and is scaled to the rectangle's mid latitude.
func rectDimensionsKm(rect models.BoundingRect) (heightKm, widthKm float64) {
	nw, se := rect.NorthWest, rect.SouthEast

	heightDeg := math.Abs(nw.Latitude - se.Latitude)
	widthDeg := rect.LongitudeSpan()

	midLat := (nw.Latitude + se.Latitude) / 2
	heightKm = heightDeg * DegToKm
	widthKm = widthDeg * DegToKm * math.Abs(math.Cos(midLat*math.Pi/180))
	return heightKm, widthKm
}

// RefineCell replaces root by those of its 32 children that intersect rect.
// Cells of length 7 or more are returned unchanged, as is a root whose
// children all intersect.
func RefineCell(root string, rect models.BoundingRect) []string {
	if len(root) >= refineBelowPrecision {
		return []string{root}
	}

	cells := make([]string, 0, len(base32))
	for i := 0; i < len(base32); i++ {
		child := root + string(base32[i])
		if intersects(geohash.BoundingBox(child), rect) {
			cells = append(cells, child)
		}
	}

	if len(cells) == len(base32) || len(cells) == 0 {
		return []string{root}
	}
	return cells
}

// intersects reports whether box and rect overlap, boundaries included.
// A rectangle crossing ±180 covers [nw.lng, 180] and [-180, se.lng].
func intersects(box geohash.Box, rect models.BoundingRect) bool {
	nw, se := rect.NorthWest, rect.SouthEast
	if box.MinLat > nw.Latitude || box.MaxLat < se.Latitude {
		return false
	}
	if rect.CrossesAntimeridian() {
		return box.MaxLng >= nw.Longitude || box.MinLng <= se.Longitude
	}
	return box.MinLng <= se.Longitude && box.MaxLng >= nw.Longitude
}
