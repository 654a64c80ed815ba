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

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vp-conformance/testbed/json"
)

type recordingSink struct {
	items    []AnyContent
	counters *Counters
}

func (r *recordingSink) AppendItem(item AnyContent) {
	r.items = append(r.items, item)
}

func (r *recordingSink) SetCounters(counters Counters) {
	r.counters = &counters
}

func TestNew(t *testing.T) {
	t.Run("copies counters and items", func(t *testing.T) {
		counters := &Counters{NrOfErrors: 1}
		items := []AnyContent{TextContent("a", "b")}

		tar := New(Failure, counters, items...)
		counters.NrOfErrors = 5
		items[0].Name = "changed"

		assert.Equal(t, Failure, tar.Result())
		assert.Equal(t, 1, tar.Counters().NrOfErrors)
		assert.Equal(t, "a", tar.Items()[0].Name)
	})
	t.Run("accessors return copies", func(t *testing.T) {
		tar := New(Success, &Counters{}, TextContent("a", "b"))

		tar.Counters().NrOfWarnings = 3
		tar.Items()[0].Name = "changed"

		assert.Equal(t, 0, tar.Counters().NrOfWarnings)
		assert.Equal(t, "a", tar.Items()[0].Name)
	})
	t.Run("without counters", func(t *testing.T) {
		tar := New(Success, nil)

		assert.Nil(t, tar.Counters())
		assert.Empty(t, tar.Items())
	})
}

func TestTAR_Item(t *testing.T) {
	tar := New(Success, nil, JSONContent("logs", []byte(`{}`)), TextContent("warnings", "w"))

	item, ok := tar.Item("warnings")
	require.True(t, ok)
	assert.Equal(t, "w", item.Data())

	_, ok = tar.Item("other")
	assert.False(t, ok)
}

func TestTAR_WriteTo(t *testing.T) {
	t.Run("items and counters", func(t *testing.T) {
		sink := &recordingSink{}
		tar := New(Failure, &Counters{NrOfErrors: 1, NrOfWarnings: 2}, TextContent("a", "1"), TextContent("b", "2"))

		tar.WriteTo(sink)

		require.Len(t, sink.items, 2)
		assert.Equal(t, "a", sink.items[0].Name)
		assert.Equal(t, "b", sink.items[1].Name)
		assert.Equal(t, &Counters{NrOfErrors: 1, NrOfWarnings: 2}, sink.counters)
	})
	t.Run("counters are not set when absent", func(t *testing.T) {
		sink := &recordingSink{}

		New(Success, nil).WriteTo(sink)

		assert.Nil(t, sink.counters)
	})
}

func TestContent(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		item := JSONContent("Verifier's Logs", []byte(`{"a":1}`))

		assert.Equal(t, "Verifier's Logs", item.Name)
		assert.Equal(t, MimeTypeJSON, item.MimeType)
		assert.Equal(t, EncodingUTF8, item.Encoding)
		require.Len(t, item.Item, 1)
		assert.Equal(t, "JSON Data", item.Item[0].Name)
		assert.Equal(t, StringEmbedding, item.Item[0].EmbeddingMethod)
		assert.Equal(t, `{"a":1}`, item.Data())
	})
	t.Run("text", func(t *testing.T) {
		item := TextContent("Validation warnings", "expired")

		assert.Equal(t, MimeTypeText, item.MimeType)
		assert.Equal(t, "expired", item.Data())
	})
}

func TestTAR_MarshalJSON(t *testing.T) {
	t.Run("layout", func(t *testing.T) {
		tar := New(Failure, &Counters{NrOfErrors: 1}, TextContent("a", "b"))

		data, err := json.Marshal(tar)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"result": "FAILURE",
			"counters": {"nrOfErrors": 1, "nrOfWarnings": 0, "nrOfAssertions": 0},
			"context": {"item": [{
				"name": "a", "mimeType": "text/plain", "encoding": "UTF-8",
				"item": [{"name": "JSON Data", "value": "b", "embeddingMethod": "STRING"}]
			}]}
		}`, string(data))
	})
	t.Run("empty report has empty item list", func(t *testing.T) {
		data, err := json.Marshal(New(Success, nil))

		require.NoError(t, err)
		assert.JSONEq(t, `{"result":"SUCCESS","context":{"item":[]}}`, string(data))
	})
	t.Run("parse", func(t *testing.T) {
		expected := New(Failure, &Counters{NrOfErrors: 1}, TextContent("a", "b"))
		data, _ := json.Marshal(expected)
		var actual TAR

		err := json.Unmarshal(data, &actual)

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
}
