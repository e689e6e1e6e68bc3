// Package parser turns raw trip messages into validated trip events.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/tripindex/internal/pkg/apperror"
	"github.com/piresc/tripindex/internal/pkg/models"
)

var validate = validator.New()

// message is the wire shape of a trip event
type message struct {
	Event  *string         `json:"event" validate:"required"`
	TripID json.RawMessage `json:"tripId" validate:"required"`
	Lat    *float64        `json:"lat" validate:"required,latitude"`
	Lng    *float64        `json:"lng" validate:"required,longitude"`
	Fare   *float64        `json:"fare"`
	Epoch  *int64          `json:"epoch" validate:"required"`
}

// Parse decodes and validates a raw trip message. Every failure is an
// *apperror.ValidationError carrying raw.
func Parse(raw []byte) (*models.TripEvent, error) {
	var msg message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, apperror.NewValidationError(raw, "malformed trip message", err)
	}

	if err := validate.Struct(msg); err != nil {
		return nil, apperror.NewValidationError(raw, "invalid trip message", err)
	}

	kind, err := models.ParseEventKind(*msg.Event)
	if err != nil {
		return nil, apperror.NewValidationError(raw, "invalid trip message", err)
	}

	tripID, err := decodeTripID(msg.TripID)
	if err != nil {
		return nil, apperror.NewValidationError(raw, "invalid trip message", err)
	}

	switch {
	case kind == models.EventEnd && msg.Fare == nil:
		return nil, apperror.NewValidationError(raw,
			fmt.Sprintf("event type '%s' has missing fare value", kind), nil)
	case kind != models.EventEnd && msg.Fare != nil:
		return nil, apperror.NewValidationError(raw,
			fmt.Sprintf("event type '%s' has a fare value of '%.2f' when it should be null", kind, *msg.Fare), nil)
	}

	return &models.TripEvent{
		Kind:      kind,
		TripID:    tripID,
		Latitude:  *msg.Lat,
		Longitude: *msg.Lng,
		Fare:      msg.Fare,
		Epoch:     *msg.Epoch,
	}, nil
}

// decodeTripID accepts a JSON string or number and returns its text
func decodeTripID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errors.New("tripId is missing")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("tripId: %w", err)
		}
		if s == "" {
			return "", errors.New("tripId is empty")
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("tripId must be a string or number: %w", err)
	}
	return n.String(), nil
}
