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

package validation

// Config holds the config of the module
type Config struct {
	Presentation  PresentationConfig  `koanf:"presentation"`
	Issuance      IssuanceConfig      `koanf:"issuance"`
	Authorization AuthorizationConfig `koanf:"authorization"`
	// SchemaValidation specifies whether presentation logs are checked against the JSON schema before they're parsed.
	SchemaValidation bool `koanf:"schemavalidation"`
}

// PresentationConfig holds the config for presentation log validation.
type PresentationConfig struct {
	Enabled bool `koanf:"enabled"`
}

// IssuanceConfig holds the config for issuance log validation.
type IssuanceConfig struct {
	Enabled bool `koanf:"enabled"`
}

// AuthorizationConfig holds the config for building authorization requests.
type AuthorizationConfig struct {
	Enabled bool `koanf:"enabled"`
	// Scheme is the URI scheme wallets are invoked with when the request doesn't specify one.
	Scheme string   `koanf:"scheme"`
	QR     QRConfig `koanf:"qr"`
}

// QRConfig holds the config for rendering QR codes.
type QRConfig struct {
	// Size is the width and height in pixels of QR codes when the request doesn't specify them.
	Size int `koanf:"size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Presentation: PresentationConfig{Enabled: true},
		Issuance:     IssuanceConfig{Enabled: true},
		Authorization: AuthorizationConfig{
			Enabled: true,
			Scheme:  "openid4vp",
			QR:      QRConfig{Size: 250},
		},
		SchemaValidation: true,
	}
}
