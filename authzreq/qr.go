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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"rsc.io/qr"
)

// ErrInvalidQRCodeSize is returned when a QR code of a non-positive size is requested.
var ErrInvalidQRCodeSize = errors.New("width and height must be positive")

// quietZone is the number of white modules around the QR code.
const quietZone = 1

// GenerateQRCode renders data as a width x height PNG QR code, with medium error correction.
// The code is scaled by whole pixels per module and centered.
func GenerateQRCode(data string, width int, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidQRCodeSize
	}
	code, err := qr.Encode(data, qr.M)
	if err != nil {
		return nil, fmt.Errorf("unable to encode QR code: %w", err)
	}
	modules := code.Size + 2*quietZone
	scale := min(width, height) / modules
	if scale < 1 {
		scale = 1
	}
	offsetX := (width - modules*scale) / 2
	offsetY := (height - modules*scale) / 2

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: 0xFF})
			mx := (x-offsetX)/scale - quietZone
			my := (y-offsetY)/scale - quietZone
			if x >= offsetX && y >= offsetY && code.Black(mx, my) {
				img.SetGray(x, y, color.Gray{Y: 0x00})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("unable to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
