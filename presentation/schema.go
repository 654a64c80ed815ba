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
	_ "embed"
	"fmt"
	"io"

	"github.com/santhosh-tekuri/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/loader"
)

const eventsSchemaURL = "https://vp-conformance.github.io/schemas/presentation-events.json"

//go:embed presentation-events-schema.json
var eventsSchemaData []byte

// EventsSchema is the JSON schema presentation logs must conform to.
var EventsSchema *jsonschema.Schema

func init() {
	// Only the embedded schema may be resolved.
	loader.Load = func(url string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("refusing to load unknown schema: %s", url)
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(eventsSchemaURL, bytes.NewReader(eventsSchemaData)); err != nil {
		panic(fmt.Errorf("error compiling schema %s: %w", eventsSchemaURL, err))
	}
	EventsSchema = compiler.MustCompile(eventsSchemaURL)
}

// ValidateSchema checks the presentation log against EventsSchema.
func ValidateSchema(data []byte) error {
	if err := EventsSchema.Validate(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEventLog, err)
	}
	return nil
}
