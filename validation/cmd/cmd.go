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

package cmd

import (
	"github.com/spf13/pflag"
	"github.com/vp-conformance/testbed/validation"
)

// FlagSet contains flags relevant for the module.
func FlagSet() *pflag.FlagSet {
	defs := validation.DefaultConfig()
	flagSet := pflag.NewFlagSet("validation", pflag.ContinueOnError)
	flagSet.Bool("validation.presentation.enabled", defs.Presentation.Enabled,
		"Enables validation of presentation (verifier) logs on /log/validation.")
	flagSet.Bool("validation.issuance.enabled", defs.Issuance.Enabled,
		"Enables validation of credential issuance logs on /log/validation/issuance.")
	flagSet.Bool("validation.schemavalidation", defs.SchemaValidation,
		"Check presentation logs against the JSON schema of the presentation events before parsing them.")
	flagSet.Bool("validation.authorization.enabled", defs.Authorization.Enabled,
		"Enables building authorization request URIs and QR codes on /authorization.")
	flagSet.String("validation.authorization.scheme", defs.Authorization.Scheme,
		"URI scheme wallets are invoked with, used when a request doesn't specify one.")
	flagSet.Int("validation.authorization.qr.size", defs.Authorization.QR.Size,
		"Width and height in pixels of QR codes, used when a request doesn't specify them.")
	return flagSet
}
