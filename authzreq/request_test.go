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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthorizationRequestURI(t *testing.T) {
	t.Run("by reference", func(t *testing.T) {
		uri, err := CreateAuthorizationRequestURI("openid4vp", JWTSecuredAuthorizationRequest{
			ClientID:         "x509_san_dns:verifier.example.com",
			RequestURI:       "https://verifier.example.com/wallet/request.jwt/abc?x=1",
			RequestURIMethod: RequestURIMethodPost,
		})

		require.NoError(t, err)
		assert.Equal(t, "openid4vp://?client_id=x509_san_dns%3Averifier.example.com&request_uri=https%3A%2F%2Fverifier.example.com%2Fwallet%2Frequest.jwt%2Fabc%3Fx%3D1&request_uri_method=post", uri)
		parsed, err := url.Parse(uri)
		require.NoError(t, err)
		assert.Equal(t, "https://verifier.example.com/wallet/request.jwt/abc?x=1", parsed.Query().Get("request_uri"))
	})
	t.Run("by value", func(t *testing.T) {
		uri, err := CreateAuthorizationRequestURI("eudi-openid4vp", JWTSecuredAuthorizationRequest{
			ClientID: "verifier",
			Request:  "eyJhbGciOiJFUzI1NiJ9.e30.sig",
		})

		require.NoError(t, err)
		assert.Equal(t, "eudi-openid4vp://?client_id=verifier&request=eyJhbGciOiJFUzI1NiJ9.e30.sig", uri)
	})
	t.Run("parameter order and escaping", func(t *testing.T) {
		uri, err := CreateAuthorizationRequestURI("openid4vp", JWTSecuredAuthorizationRequest{
			ClientID:         "a b",
			Request:          "r",
			RequestURI:       "u",
			RequestURIMethod: "GET",
		})

		require.NoError(t, err)
		assert.Equal(t, "openid4vp://?client_id=a+b&request=r&request_uri=u&request_uri_method=get", uri)
	})
	t.Run("client_id is required", func(t *testing.T) {
		_, err := CreateAuthorizationRequestURI("openid4vp", JWTSecuredAuthorizationRequest{RequestURI: "u"})

		assert.ErrorIs(t, err, ErrInvalidAuthorizationRequest)
		assert.ErrorContains(t, err, "client_id is required")
	})
	t.Run("scheme is required", func(t *testing.T) {
		_, err := CreateAuthorizationRequestURI("", JWTSecuredAuthorizationRequest{ClientID: "c"})

		assert.ErrorContains(t, err, "scheme is required")
	})
	t.Run("invalid scheme", func(t *testing.T) {
		_, err := CreateAuthorizationRequestURI("open id", JWTSecuredAuthorizationRequest{ClientID: "c"})

		assert.ErrorIs(t, err, ErrInvalidAuthorizationRequest)
	})
	t.Run("unsupported request_uri_method", func(t *testing.T) {
		_, err := CreateAuthorizationRequestURI("openid4vp", JWTSecuredAuthorizationRequest{ClientID: "c", RequestURIMethod: "put"})

		assert.ErrorIs(t, err, ErrInvalidAuthorizationRequest)
	})
}

func TestParseRequestURIMethod(t *testing.T) {
	method, err := ParseRequestURIMethod("Post")
	require.NoError(t, err)
	assert.Equal(t, RequestURIMethodPost, method)

	method, err = ParseRequestURIMethod("get")
	require.NoError(t, err)
	assert.Equal(t, RequestURIMethodGet, method)

	_, err = ParseRequestURIMethod("")
	assert.Error(t, err)
}
