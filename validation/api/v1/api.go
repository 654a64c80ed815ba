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

package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vp-conformance/testbed/audit"
	"github.com/vp-conformance/testbed/authzreq"
	"github.com/vp-conformance/testbed/core"
	"github.com/vp-conformance/testbed/issuance"
	"github.com/vp-conformance/testbed/presentation"
	"github.com/vp-conformance/testbed/validation"
	"github.com/vp-conformance/testbed/validation/log"
)

var _ core.ErrorStatusCodeResolver = (*Wrapper)(nil)
var _ core.Routable = (*Wrapper)(nil)

// Features tells which operations are enabled, so only those get routed.
type Features interface {
	PresentationEnabled() bool
	IssuanceEnabled() bool
	AuthorizationEnabled() bool
}

// Wrapper exposes the validation Service over HTTP.
type Wrapper struct {
	Service  validation.Service
	Features Features
}

// ResolveStatusCode maps errors returned by the Service to HTTP status codes.
func (w *Wrapper) ResolveStatusCode(err error) int {
	return core.ResolveStatusCode(err, map[error]int{
		validation.ErrMissingInput:              http.StatusBadRequest,
		validation.ErrDisabled:                  http.StatusNotFound,
		errInvalidEmbedding:                     http.StatusBadRequest,
		presentation.ErrInvalidEventLog:         http.StatusBadRequest,
		issuance.ErrInvalidIssuanceLog:          http.StatusBadRequest,
		authzreq.ErrInvalidAuthorizationRequest: http.StatusBadRequest,
		authzreq.ErrInvalidQRCodeSize:           http.StatusBadRequest,
	})
}

// Routes registers the enabled operations on the router.
func (w *Wrapper) Routes(router core.EchoRouter) {
	if w.Features == nil || w.Features.PresentationEnabled() {
		router.GET("/log/validation/definition", w.operation("GetPresentationModuleDefinition", w.GetPresentationModuleDefinition))
		router.POST("/log/validation", w.operation("ValidatePresentationLog", w.ValidatePresentationLog))
	}
	if w.Features == nil || w.Features.IssuanceEnabled() {
		router.GET("/log/validation/issuance/definition", w.operation("GetIssuanceModuleDefinition", w.GetIssuanceModuleDefinition))
		router.POST("/log/validation/issuance", w.operation("ValidateIssuanceLog", w.ValidateIssuanceLog))
	}
	if w.Features == nil || w.Features.AuthorizationEnabled() {
		router.POST("/authorization/request-uri", w.operation("CreateAuthorizationRequestURI", w.CreateAuthorizationRequestURI))
		router.GET("/authorization/qr", w.operation("GenerateQRCode", w.GenerateQRCode))
	}
}

func (w *Wrapper) operation(operationID string, handler echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ctx.Set(core.OperationIDContextKey, operationID)
		ctx.Set(core.ModuleNameContextKey, validation.ModuleName)
		ctx.Set(core.StatusCodeResolverContextKey, w)
		audit.Middleware(ctx, validation.ModuleName, operationID)
		return handler(ctx)
	}
}

// GetPresentationModuleDefinition describes the inputs of presentation log validation.
func (w *Wrapper) GetPresentationModuleDefinition(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, GetModuleDefinitionResponse{Module: presentationModuleDefinition})
}

// GetIssuanceModuleDefinition describes the inputs of issuance log validation.
func (w *Wrapper) GetIssuanceModuleDefinition(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, GetModuleDefinitionResponse{Module: issuanceModuleDefinition})
}

// ValidatePresentationLog validates a presentation log.
func (w *Wrapper) ValidatePresentationLog(ctx echo.Context) error {
	request, err := bindValidateRequest(ctx)
	if err != nil {
		return err
	}
	text, err := request.Required(InputText)
	if err != nil {
		return err
	}
	expectedEvent, err := request.Optional(InputExpectedEvent)
	if err != nil {
		return err
	}
	tar, err := w.Service.ValidatePresentationLog(ctx.Request().Context(), text, expectedEvent)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ValidationResponse{Report: tar})
}

// ValidateIssuanceLog validates a credential issuance log.
func (w *Wrapper) ValidateIssuanceLog(ctx echo.Context) error {
	request, err := bindValidateRequest(ctx)
	if err != nil {
		return err
	}
	text, err := request.Required(InputText)
	if err != nil {
		return err
	}
	expected, err := request.Optional(InputExpected)
	if err != nil {
		return err
	}
	tar, err := w.Service.ValidateIssuanceLog(ctx.Request().Context(), text, expected)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ValidationResponse{Report: tar})
}

// CreateAuthorizationRequestURI builds the URI a wallet is invoked with.
func (w *Wrapper) CreateAuthorizationRequestURI(ctx echo.Context) error {
	var request AuthorizationRequest
	if err := ctx.Bind(&request); err != nil {
		return core.InvalidInputError("invalid authorization request: %w", err)
	}
	uri, err := w.Service.CreateAuthorizationRequestURI(ctx.Request().Context(), request.Scheme, authzreq.JWTSecuredAuthorizationRequest{
		ClientID:         request.ClientID,
		Request:          request.Request,
		RequestURI:       request.RequestURI,
		RequestURIMethod: authzreq.RequestURIMethod(request.RequestURIMethod),
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, AuthorizationRequestURIResponse{URI: uri})
}

// GenerateQRCode renders the data query parameter as PNG QR code.
func (w *Wrapper) GenerateQRCode(ctx echo.Context) error {
	width, err := optionalIntParam(ctx, "width")
	if err != nil {
		return err
	}
	height, err := optionalIntParam(ctx, "height")
	if err != nil {
		return err
	}
	image, err := w.Service.GenerateQRCode(ctx.QueryParam("data"), width, height)
	if err != nil {
		return err
	}
	return ctx.Blob(http.StatusOK, "image/png", image)
}

func bindValidateRequest(ctx echo.Context) (*ValidateRequest, error) {
	var request ValidateRequest
	if err := ctx.Bind(&request); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return nil, core.InvalidInputError("invalid validate request: %s", httpErr.Message)
		}
		return nil, core.InvalidInputError("invalid validate request: %w", err)
	}
	if request.SessionID == "" {
		request.SessionID = uuid.NewString()
	}
	log.Logger().
		WithField(core.LogFieldSessionID, request.SessionID).
		Infof("Received '%s' command from test bed", ctx.Get(core.OperationIDContextKey))
	return &request, nil
}

func optionalIntParam(ctx echo.Context, name string) (int, error) {
	value := ctx.QueryParam(name)
	if value == "" {
		return 0, nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, core.InvalidInputError("invalid %s: %w", name, err)
	}
	return result, nil
}
