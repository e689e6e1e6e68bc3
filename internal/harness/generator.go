package harness

import (
	"encoding/json"
	"math/rand"
	"strconv"

	"github.com/piresc/tripindex/internal/pkg/models"
)

// DefaultCenter is the position generated events are scattered around
var DefaultCenter = models.GeoPoint{Latitude: 37.79947, Longitude: 122.511635}

const (
	maxFare = 50
	jitter  = 0.05 // degrees
)

// Generator produces random trip events: about 1% begin, 1% end, the rest updates
type Generator struct {
	rnd    *rand.Rand
	center models.GeoPoint
	now    func() int64
}

// NewGenerator creates a generator seeded with seed
func NewGenerator(seed int64, center models.GeoPoint) *Generator {
	return &Generator{
		rnd:    rand.New(rand.NewSource(seed)),
		center: center,
		now:    models.NowMillis,
	}
}

// Event returns the next random event
func (g *Generator) Event() models.TripEvent {
	event := models.TripEvent{
		Kind:      models.EventUpdate,
		TripID:    strconv.Itoa(int(g.rnd.Int31())),
		Latitude:  clamp(g.center.Latitude+g.offset(), -90, 90),
		Longitude: clamp(g.center.Longitude+g.offset(), -180, 180),
		Epoch:     g.now(),
	}

	switch g.rnd.Intn(100) {
	case 0:
		event.Kind = models.EventBegin
	case 99:
		event.Kind = models.EventEnd
		fare := float64(g.rnd.Intn(maxFare)) * g.rnd.Float64()
		event.Fare = &fare
	}

	return event
}

// Next returns the next random event encoded as a wire message
func (g *Generator) Next() ([]byte, error) {
	event := g.Event()
	return json.Marshal(&event)
}

func (g *Generator) offset() float64 {
	return (g.rnd.Float64()*2 - 1) * jitter
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
