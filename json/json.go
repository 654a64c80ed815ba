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

// Package json is the JSON codec of the testbed. It wraps sonnet, which is a drop-in replacement for encoding/json.
package json

import (
	"io"

	"github.com/sugawarayuuta/sonnet"
)

type Unmarshaler = sonnet.Unmarshaler

type Marshaler = sonnet.Marshaler

type RawMessage = sonnet.RawMessage

var NewEncoder = sonnet.NewEncoder
var NewDecoder = sonnet.NewDecoder
var MarshalIndent = sonnet.MarshalIndent

func Unmarshal(data []byte, v interface{}) error {
	return sonnet.Unmarshal(data, v)
}

func Marshal(v interface{}) ([]byte, error) {
	return sonnet.Marshal(v)
}

// Codec turns raw text into typed values and back. Implementations must be safe for concurrent use.
type Codec interface {
	Unmarshal(data []byte, v interface{}) error
	Marshal(v interface{}) ([]byte, error)
	MarshalIndent(v interface{}, prefix, indent string) ([]byte, error)
	// Decode reads a single JSON document from the reader.
	Decode(reader io.Reader, v interface{}) error
}

// DefaultCodec is the stateless, sonnet based Codec.
var DefaultCodec Codec = sonnetCodec{}

type sonnetCodec struct{}

func (sonnetCodec) Unmarshal(data []byte, v interface{}) error {
	return sonnet.Unmarshal(data, v)
}

func (sonnetCodec) Marshal(v interface{}) ([]byte, error) {
	return sonnet.Marshal(v)
}

func (sonnetCodec) MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return sonnet.MarshalIndent(v, prefix, indent)
}

func (sonnetCodec) Decode(reader io.Reader, v interface{}) error {
	return sonnet.NewDecoder(reader).Decode(v)
}
