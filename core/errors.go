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

package core

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPStatusCodeError is an error that carries the HTTP status code it must be reported with.
type HTTPStatusCodeError interface {
	error
	StatusCode() int
}

type statusCodeError struct {
	cause      error
	statusCode int
}

func (e statusCodeError) Error() string {
	return e.cause.Error()
}

func (e statusCodeError) Unwrap() error {
	return e.cause
}

func (e statusCodeError) StatusCode() int {
	return e.statusCode
}

// Is reports whether target is a statusCodeError with the same status code.
func (e statusCodeError) Is(target error) bool {
	other, ok := target.(statusCodeError)
	return ok && other.statusCode == e.statusCode
}

// Error returns an error that is reported with the given HTTP status code.
// The message is formatted by fmt.Errorf, so causes can be wrapped with %w.
func Error(statusCode int, format string, args ...interface{}) error {
	return statusCodeError{cause: fmt.Errorf(format, args...), statusCode: statusCode}
}

// InvalidInputError returns an error that is reported as 400 Bad Request.
func InvalidInputError(format string, args ...interface{}) error {
	return Error(http.StatusBadRequest, format, args...)
}

// ErrorStatusCodeResolver resolves the HTTP status code of errors returned by the operations of an API.
type ErrorStatusCodeResolver interface {
	// ResolveStatusCode returns the status code for the error, or 0 if it doesn't know the error.
	ResolveStatusCode(err error) int
}

// ResolveStatusCode returns the status code of the first error in the mapping that matches err according to errors.Is.
// It returns 0 if none match.
func ResolveStatusCode(err error, mapping map[error]int) int {
	for target, code := range mapping {
		if errors.Is(err, target) {
			return code
		}
	}
	return 0
}
