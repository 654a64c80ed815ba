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

// Package authzreq builds OpenID4VP authorization requests as passed to a wallet, by URI or QR code.
package authzreq

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidAuthorizationRequest is returned when an authorization request URI can't be built from the given input.
var ErrInvalidAuthorizationRequest = errors.New("invalid authorization request")

// RequestURIMethod is the HTTP method the wallet must use to fetch the request object.
type RequestURIMethod string

const (
	RequestURIMethodGet  RequestURIMethod = "get"
	RequestURIMethodPost RequestURIMethod = "post"
)

// ParseRequestURIMethod parses a request URI method, case-insensitive.
func ParseRequestURIMethod(value string) (RequestURIMethod, error) {
	switch method := RequestURIMethod(strings.ToLower(value)); method {
	case RequestURIMethodGet, RequestURIMethodPost:
		return method, nil
	default:
		return "", fmt.Errorf("%w: unsupported request_uri_method: %s", ErrInvalidAuthorizationRequest, value)
	}
}

// JWTSecuredAuthorizationRequest is an authorization request passed by value (Request) or by reference (RequestURI).
type JWTSecuredAuthorizationRequest struct {
	ClientID         string           `json:"client_id"`
	Request          string           `json:"request,omitempty"`
	RequestURI       string           `json:"request_uri,omitempty"`
	RequestURIMethod RequestURIMethod `json:"request_uri_method,omitempty"`
}

// CreateAuthorizationRequestURI builds the URI a wallet is invoked with, e.g. openid4vp://?client_id=...&request_uri=...
// Parameters are added in the order client_id, request, request_uri, request_uri_method and omitted when empty.
func CreateAuthorizationRequestURI(scheme string, request JWTSecuredAuthorizationRequest) (string, error) {
	if scheme == "" {
		return "", fmt.Errorf("%w: scheme is required", ErrInvalidAuthorizationRequest)
	}
	if request.ClientID == "" {
		return "", fmt.Errorf("%w: client_id is required", ErrInvalidAuthorizationRequest)
	}
	params := []string{"client_id", request.ClientID}
	if request.Request != "" {
		params = append(params, "request", request.Request)
	}
	if request.RequestURI != "" {
		params = append(params, "request_uri", request.RequestURI)
	}
	if request.RequestURIMethod != "" {
		method, err := ParseRequestURIMethod(string(request.RequestURIMethod))
		if err != nil {
			return "", err
		}
		params = append(params, "request_uri_method", string(method))
	}
	// url.Values would sort the parameters
	var query strings.Builder
	for i := 0; i < len(params); i += 2 {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(url.QueryEscape(params[i]))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(params[i+1]))
	}
	result := scheme + "://?" + query.String()
	if _, err := url.Parse(result); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationRequest, err)
	}
	return result, nil
}
