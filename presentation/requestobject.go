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
	"context"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// RequestObject parses the retrieved request object. The signature is NOT verified and
// the claims are not validated: the result may only be used for display purposes.
func (r RequestObjectRetrieved) RequestObject() (jwt.Token, error) {
	token, err := jwt.ParseString(r.JWT, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return nil, fmt.Errorf("unable to parse request object: %w", err)
	}
	return token, nil
}

// RequestObjectClaims returns the (unverified) claims of the retrieved request object.
func (r RequestObjectRetrieved) RequestObjectClaims(ctx context.Context) (map[string]interface{}, error) {
	token, err := r.RequestObject()
	if err != nil {
		return nil, err
	}
	return token.AsMap(ctx)
}
