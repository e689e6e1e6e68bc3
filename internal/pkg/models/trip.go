package models

import (
	"fmt"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the precision at which trip positions are indexed
const GeohashPrecision = 9

// EventKind is the lifecycle stage a trip event reports
type EventKind string

const (
	EventBegin  EventKind = "begin"
	EventUpdate EventKind = "update"
	EventEnd    EventKind = "end"
)

// ParseEventKind maps a case-insensitive event name to its kind
func ParseEventKind(s string) (EventKind, error) {
	switch kind := EventKind(strings.ToLower(s)); kind {
	case EventBegin, EventUpdate, EventEnd:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown event type %q", s)
	}
}

// String returns the upper-case name used in log lines
func (k EventKind) String() string {
	return strings.ToUpper(string(k))
}

// TripEvent is a validated trip location event
type TripEvent struct {
	Kind      EventKind `json:"event"`
	TripID    string    `json:"tripId"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Fare      *float64  `json:"fare,omitempty"`
	Epoch     int64     `json:"epoch"` // milliseconds since the Unix epoch
}

// Geohash returns the full precision geohash of the event position
func (e *TripEvent) Geohash() string {
	return geohash.EncodeWithPrecision(e.Latitude, e.Longitude, GeohashPrecision)
}

// Prefixes returns every prefix of the event geohash, shortest first
func (e *TripEvent) Prefixes() []string {
	hash := e.Geohash()
	prefixes := make([]string, 0, len(hash))
	for i := 1; i <= len(hash); i++ {
		prefixes = append(prefixes, hash[:i])
	}
	return prefixes
}
