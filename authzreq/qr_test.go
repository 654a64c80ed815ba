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

package authzreq

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func isBlack(img image.Image, x, y int) bool {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y == 0
}

func TestGenerateQRCode(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		data, err := GenerateQRCode("openid4vp://?client_id=verifier&request_uri=https%3A%2F%2Fverifier.example.com", 250, 250)

		require.NoError(t, err)
		img := decodePNG(t, data)
		assert.Equal(t, image.Rect(0, 0, 250, 250), img.Bounds())
		assert.False(t, isBlack(img, 0, 0))
		assert.False(t, isBlack(img, 249, 249))
		blackPixels := 0
		for y := 0; y < 250; y++ {
			for x := 0; x < 250; x++ {
				if isBlack(img, x, y) {
					blackPixels++
				}
			}
		}
		assert.Greater(t, blackPixels, 0)
	})
	t.Run("non-square", func(t *testing.T) {
		data, err := GenerateQRCode("hello", 300, 120)

		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 300, 120), decodePNG(t, data).Bounds())
	})
	t.Run("smaller than the code", func(t *testing.T) {
		data, err := GenerateQRCode("hello", 5, 5)

		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 5, 5), decodePNG(t, data).Bounds())
	})
	t.Run("different data yields different images", func(t *testing.T) {
		first, err := GenerateQRCode("first", 100, 100)
		require.NoError(t, err)
		second, err := GenerateQRCode("second", 100, 100)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
	t.Run("empty data", func(t *testing.T) {
		_, err := GenerateQRCode("", 100, 100)

		assert.NoError(t, err)
	})
	t.Run("invalid size", func(t *testing.T) {
		_, err := GenerateQRCode("hello", 0, 100)
		assert.ErrorIs(t, err, ErrInvalidQRCodeSize)

		_, err = GenerateQRCode("hello", 100, -1)
		assert.ErrorIs(t, err, ErrInvalidQRCodeSize)
	})
}
