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
	"bytes"
	"reflect"

	"github.com/vp-conformance/testbed/json"
)

var jsonNull = []byte("null")

// JSONValue is an opaque, immutable JSON value as found in event payloads.
// The zero value represents an absent value.
type JSONValue struct {
	raw []byte
}

// NewJSONValue wraps the given JSON document. The input is copied.
func NewJSONValue(raw []byte) JSONValue {
	return JSONValue{raw: bytes.Clone(bytes.TrimSpace(raw))}
}

// IsAbsent returns true if the value is missing or JSON null.
func (v JSONValue) IsAbsent() bool {
	return len(v.raw) == 0 || bytes.Equal(v.raw, jsonNull)
}

// Bytes returns a copy of the raw JSON.
func (v JSONValue) Bytes() []byte {
	return bytes.Clone(v.raw)
}

func (v JSONValue) String() string {
	if v.IsAbsent() {
		return string(jsonNull)
	}
	return string(v.raw)
}

// Equal reports whether both values are structurally equal: object member order and insignificant
// whitespace are ignored, array order is significant. Numbers are compared by their literal,
// so 1 and 1.0 differ and integers beyond float64 precision keep their identity.
// Two absent values are equal. A value that isn't valid JSON equals nothing.
func (v JSONValue) Equal(other JSONValue) bool {
	if v.IsAbsent() || other.IsAbsent() {
		return v.IsAbsent() == other.IsAbsent()
	}
	left, err := v.decode()
	if err != nil {
		return false
	}
	right, err := other.decode()
	if err != nil {
		return false
	}
	return reflect.DeepEqual(left, right)
}

// decode returns the value as generic JSON (maps, slices, strings, bools and json.Number).
func (v JSONValue) decode() (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(v.raw))
	decoder.UseNumber()
	var result interface{}
	if err := decoder.Decode(&result); err != nil {
		return nil, err
	}
	return result, nil
}

// MarshalJSON returns the raw JSON, or null if the value is absent.
func (v JSONValue) MarshalJSON() ([]byte, error) {
	if v.IsAbsent() {
		return jsonNull, nil
	}
	return bytes.Clone(v.raw), nil
}

// UnmarshalJSON stores a copy of the given JSON.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	*v = NewJSONValue(data)
	return nil
}
