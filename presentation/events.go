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
	"sort"

	"github.com/vp-conformance/testbed/json"
)

// EventKind is the discriminator of a presentation event, carried in its "event" field.
type EventKind string

// The discriminators are a wire contract: they must match the labels emitted by the verifier exactly.
const (
	EventTransactionInitialized                 EventKind = "Transaction initialized"
	EventRequestObjectRetrieved                 EventKind = "Request object retrieved"
	EventFailedToRetrieveRequestObject          EventKind = "FailedToRetrieve request"
	EventFailedToRetrievePresentationDefinition EventKind = "Failed to retrieve presentation definition"
	EventWalletResponsePosted                   EventKind = "Wallet response posted"
	EventWalletFailedToPostResponse             EventKind = "Wallet failed to post response"
	EventVerifierGotWalletResponse              EventKind = "Verifier got wallet response"
	EventVerifierFailedToGetWalletResponse      EventKind = "Verifier failed to get wallet"
	EventPresentationExpired                    EventKind = "Presentation expired"
	EventAttestationStatusCheckSuccessful       EventKind = "Attestation status check succeeded"
	EventAttestationStatusCheckFailed           EventKind = "Attestation status check failed"
)

type eventDecoder func(codec json.Codec, data []byte) (PresentationEvent, error)

// eventKinds is the dispatch table from discriminator to variant.
var eventKinds = map[EventKind]eventDecoder{
	EventTransactionInitialized:                 decodeAs[TransactionInitialized],
	EventRequestObjectRetrieved:                 decodeAs[RequestObjectRetrieved],
	EventFailedToRetrieveRequestObject:          decodeAs[FailedToRetrieveRequestObject],
	EventFailedToRetrievePresentationDefinition: decodeAs[FailedToRetrievePresentationDefinition],
	EventWalletResponsePosted:                   decodeAs[WalletResponsePosted],
	EventWalletFailedToPostResponse:             decodeAs[WalletFailedToPostResponse],
	EventVerifierGotWalletResponse:              decodeAs[VerifierGotWalletResponse],
	EventVerifierFailedToGetWalletResponse:      decodeAs[VerifierFailedToGetWalletResponse],
	EventPresentationExpired:                    decodeAs[PresentationExpired],
	EventAttestationStatusCheckSuccessful:       decodeAs[AttestationStatusCheckSuccessful],
	EventAttestationStatusCheckFailed:           decodeAs[AttestationStatusCheckFailed],
}

func decodeAs[E PresentationEvent](codec json.Codec, data []byte) (PresentationEvent, error) {
	var event E
	if err := codec.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return event, nil
}

// EventKinds returns all recognized event kinds, sorted.
func EventKinds() []EventKind {
	result := make([]EventKind, 0, len(eventKinds))
	for kind := range eventKinds {
		result = append(result, kind)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

// Known returns whether the kind is a recognized discriminator.
func (k EventKind) Known() bool {
	_, ok := eventKinds[k]
	return ok
}

// PresentationEvent is one entry of a presentation log. The set of implementations is closed:
// only the variants in this package implement it.
type PresentationEvent interface {
	// Header returns the fields common to all events.
	Header() EventHeader
	presentationEvent()
}

// EventHeader holds the fields every presentation event carries.
type EventHeader struct {
	// Timestamp is the ISO-8601 time the event occurred. It is not parsed.
	Timestamp string `json:"timestamp"`
	// Event is the discriminator.
	Event EventKind `json:"event"`
	// Actor is the role that emitted the event, e.g. "Verifier" or "Wallet".
	Actor string `json:"actor"`
}

// NewHeader creates the common part of an event.
func NewHeader(kind EventKind, timestamp string, actor string) EventHeader {
	return EventHeader{Timestamp: timestamp, Event: kind, Actor: actor}
}

// Header implements PresentationEvent.
func (h EventHeader) Header() EventHeader {
	return h
}

// Kind returns the discriminator of the event.
func (h EventHeader) Kind() EventKind {
	return h.Event
}

func (h EventHeader) presentationEvent() {}

// TransactionInitialized is logged when the verifier creates a transaction.
type TransactionInitialized struct {
	EventHeader
	Response JSONValue `json:"response"`
}

// RequestObjectRetrieved is logged when the wallet fetched the request object.
type RequestObjectRetrieved struct {
	EventHeader
	JWT string `json:"jwt"`
}

// FailedToRetrieveRequestObject is logged when the wallet could not fetch the request object.
type FailedToRetrieveRequestObject struct {
	EventHeader
	Cause string `json:"cause"`
}

// FailedToRetrievePresentationDefinition is logged when the wallet could not fetch the presentation definition.
type FailedToRetrievePresentationDefinition struct {
	EventHeader
	Cause string `json:"cause"`
}

// WalletResponsePosted is logged when the wallet posted its authorization response.
type WalletResponsePosted struct {
	EventHeader
	WalletResponse           JSONValue  `json:"wallet_response"`
	VerifierEndpointResponse *JSONValue `json:"verifier_response,omitempty"`
}

// WalletFailedToPostResponse is logged when the wallet's authorization response was rejected.
type WalletFailedToPostResponse struct {
	EventHeader
	Cause string `json:"cause"`
}

// VerifierGotWalletResponse is logged when the verifier's frontend retrieved the wallet response.
type VerifierGotWalletResponse struct {
	EventHeader
	WalletResponse JSONValue `json:"wallet_response"`
}

// VerifierFailedToGetWalletResponse is logged when the verifier's frontend could not retrieve the wallet response.
type VerifierFailedToGetWalletResponse struct {
	EventHeader
	Cause string `json:"cause"`
}

// PresentationExpired is logged when the transaction timed out.
type PresentationExpired struct {
	EventHeader
}

// AttestationStatusCheckSuccessful is logged when a status list check of an attestation passed.
type AttestationStatusCheckSuccessful struct {
	EventHeader
	StatusReference JSONValue `json:"status_reference"`
}

// AttestationStatusCheckFailed is logged when a status list check of an attestation failed.
type AttestationStatusCheckFailed struct {
	EventHeader
	StatusReference *JSONValue `json:"status_reference,omitempty"`
	Cause           *string    `json:"cause,omitempty"`
}
