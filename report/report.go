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

// Package report contains the test assertion report (TAR) returned by validations.
// A TAR is an immutable value: it is constructed in one step and only read afterwards.
package report

import (
	"github.com/vp-conformance/testbed/json"
)

// ResultType is the overall outcome of a validation.
type ResultType string

const (
	// Success indicates the validated input met all expectations.
	Success ResultType = "SUCCESS"
	// Failure indicates a non-recoverable error was found.
	Failure ResultType = "FAILURE"
)

// ValueEmbedding specifies how the value of a content item is embedded.
type ValueEmbedding string

// StringEmbedding embeds the value as a (UTF-8) string.
const StringEmbedding ValueEmbedding = "STRING"

const (
	// MimeTypeJSON is the MIME type of structured content items.
	MimeTypeJSON = "application/json"
	// MimeTypeText is the MIME type of plain text content items.
	MimeTypeText = "text/plain"
	// EncodingUTF8 is the text encoding of all content items.
	EncodingUTF8 = "UTF-8"
	// dataItemName is the name of the value nested in every content item.
	dataItemName = "JSON Data"
)

// AnyContent is a named, typed piece of report content. It either holds a value or nested items.
type AnyContent struct {
	Name            string         `json:"name,omitempty"`
	Value           string         `json:"value,omitempty"`
	EmbeddingMethod ValueEmbedding `json:"embeddingMethod,omitempty"`
	MimeType        string         `json:"mimeType,omitempty"`
	Encoding        string         `json:"encoding,omitempty"`
	Item            []AnyContent   `json:"item,omitempty"`
}

// Counters holds the number of errors and warnings of a validation.
type Counters struct {
	NrOfErrors     int `json:"nrOfErrors"`
	NrOfWarnings   int `json:"nrOfWarnings"`
	NrOfAssertions int `json:"nrOfAssertions"`
}

// Sink is an external report container that content items and counters can be pushed into.
type Sink interface {
	AppendItem(item AnyContent)
	SetCounters(counters Counters)
}

// TAR is the test assertion report.
type TAR struct {
	result   ResultType
	counters *Counters
	items    []AnyContent
}

// New constructs a report. Counters may be nil for reports that don't count errors and warnings.
func New(result ResultType, counters *Counters, items ...AnyContent) TAR {
	tar := TAR{
		result: result,
		items:  append([]AnyContent(nil), items...),
	}
	if counters != nil {
		c := *counters
		tar.counters = &c
	}
	return tar
}

// Result returns the overall result.
func (t TAR) Result() ResultType {
	return t.result
}

// Counters returns the error and warning counters, or nil if the report doesn't count.
func (t TAR) Counters() *Counters {
	if t.counters == nil {
		return nil
	}
	c := *t.counters
	return &c
}

// Items returns a copy of the content items, in report order.
func (t TAR) Items() []AnyContent {
	return append([]AnyContent(nil), t.items...)
}

// Item returns the content item with the given name.
func (t TAR) Item(name string) (AnyContent, bool) {
	for _, item := range t.items {
		if item.Name == name {
			return item, true
		}
	}
	return AnyContent{}, false
}

// WriteTo pushes the report's content items and counters into the given sink.
func (t TAR) WriteTo(sink Sink) {
	for _, item := range t.items {
		sink.AppendItem(item)
	}
	if t.counters != nil {
		sink.SetCounters(*t.counters)
	}
}

type tarContext struct {
	Item []AnyContent `json:"item"`
}

type tarJSON struct {
	Result   ResultType `json:"result"`
	Counters *Counters  `json:"counters,omitempty"`
	Context  tarContext `json:"context"`
}

// MarshalJSON serializes the report in GITB TAR layout.
func (t TAR) MarshalJSON() ([]byte, error) {
	items := t.items
	if items == nil {
		items = []AnyContent{}
	}
	return json.Marshal(tarJSON{
		Result:   t.result,
		Counters: t.counters,
		Context:  tarContext{Item: items},
	})
}

// UnmarshalJSON parses a report serialized by MarshalJSON.
func (t *TAR) UnmarshalJSON(data []byte) error {
	var raw tarJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = New(raw.Result, raw.Counters, raw.Context.Item...)
	return nil
}

// JSONContent creates a content item holding the given JSON document.
func JSONContent(name string, data []byte) AnyContent {
	return content(name, MimeTypeJSON, string(data))
}

// TextContent creates a content item holding the given plain text.
func TextContent(name string, text string) AnyContent {
	return content(name, MimeTypeText, text)
}

func content(name string, mimeType string, value string) AnyContent {
	return AnyContent{
		Name:     name,
		MimeType: mimeType,
		Encoding: EncodingUTF8,
		Item: []AnyContent{{
			Name:            dataItemName,
			Value:           value,
			EmbeddingMethod: StringEmbedding,
		}},
	}
}

// Data returns the value of the item's embedded data, as created by JSONContent or TextContent.
func (a AnyContent) Data() string {
	for _, item := range a.Item {
		if item.Name == dataItemName {
			return item.Value
		}
	}
	return ""
}
