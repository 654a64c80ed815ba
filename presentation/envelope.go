/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package presentation

import (
	"errors"
	"fmt"

	"github.com/vp-conformance/testbed/json"
)

// ErrInvalidEventLog is returned when a presentation log can't be parsed.
var ErrInvalidEventLog = errors.New("invalid presentation log")

// ErrUnknownEventKind is returned when a presentation log contains an event with an unrecognized discriminator.
var ErrUnknownEventKind = fmt.Errorf("%w: unknown event kind", ErrInvalidEventLog)

// PresentationEventsTO is the log of a single presentation transaction.
// Events are kept in log order.
type PresentationEventsTO struct {
	TransactionID string
	// LastUpdated is the time of the last change, in milliseconds since the Unix epoch.
	LastUpdated int64
	Events      []PresentationEvent
}

type envelopeWire struct {
	TransactionID string            `json:"transaction_id"`
	LastUpdated   int64             `json:"last_updated"`
	Events        []json.RawMessage `json:"events"`
}

type envelopeOut struct {
	TransactionID string              `json:"transaction_id"`
	LastUpdated   int64               `json:"last_updated"`
	Events        []PresentationEvent `json:"events"`
}

// ParseEvents decodes a presentation log using the given codec.
// Unknown fields are ignored, unknown event kinds are rejected.
func ParseEvents(codec json.Codec, data []byte) (*PresentationEventsTO, error) {
	var wire envelopeWire
	if err := codec.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEventLog, err)
	}
	result := &PresentationEventsTO{
		TransactionID: wire.TransactionID,
		LastUpdated:   wire.LastUpdated,
		Events:        make([]PresentationEvent, 0, len(wire.Events)),
	}
	for i, raw := range wire.Events {
		event, err := parseEvent(codec, raw)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		result.Events = append(result.Events, event)
	}
	return result, nil
}

func parseEvent(codec json.Codec, data []byte) (PresentationEvent, error) {
	var header EventHeader
	if err := codec.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEventLog, err)
	}
	decode, ok := eventKinds[header.Event]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventKind, header.Event)
	}
	event, err := decode(codec, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEventLog, err)
	}
	return event, nil
}

// Serialize encodes the log using the given codec.
func (p PresentationEventsTO) Serialize(codec json.Codec) ([]byte, error) {
	events := p.Events
	if events == nil {
		events = []PresentationEvent{}
	}
	return codec.Marshal(envelopeOut{
		TransactionID: p.TransactionID,
		LastUpdated:   p.LastUpdated,
		Events:        events,
	})
}

// MarshalJSON implements json.Marshaler using the default codec.
func (p PresentationEventsTO) MarshalJSON() ([]byte, error) {
	return p.Serialize(json.DefaultCodec)
}

// UnmarshalJSON implements json.Unmarshaler using the default codec.
func (p *PresentationEventsTO) UnmarshalJSON(data []byte) error {
	parsed, err := ParseEvents(json.DefaultCodec, data)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

// First returns the first event of type E in the log, if any.
func First[E PresentationEvent](events []PresentationEvent) (E, bool) {
	for _, event := range events {
		if match, ok := event.(E); ok {
			return match, true
		}
	}
	var empty E
	return empty, false
}
