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
	"fmt"
	"os"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"
	"github.com/vp-conformance/testbed/authzreq"
	"github.com/vp-conformance/testbed/validation"
)

func createAuthorizationURICommand() *cobra.Command {
	var scheme string
	var request authzreq.JWTSecuredAuthorizationRequest
	var requestURIMethod string
	var printQR bool
	var pngFile string
	var pngSize int
	command := &cobra.Command{
		Use:   "authz-uri",
		Short: "Builds the authorization request URI a wallet is invoked with, optionally rendered as QR code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request.RequestURIMethod = authzreq.RequestURIMethod(requestURIMethod)
			uri, err := authzreq.CreateAuthorizationRequestURI(scheme, request)
			if err != nil {
				return err
			}
			cmd.Println(uri)
			if printQR {
				qrterminal.GenerateWithConfig(uri, qrterminal.Config{
					HalfBlocks: true,
					Level:      qrterminal.M,
					Writer:     cmd.OutOrStdout(),
					QuietZone:  1,
				})
			}
			if pngFile != "" {
				image, err := authzreq.GenerateQRCode(uri, pngSize, pngSize)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pngFile, image, 0644); err != nil {
					return fmt.Errorf("unable to write QR code: %w", err)
				}
			}
			return nil
		},
	}
	defs := validation.DefaultConfig()
	command.Flags().StringVar(&scheme, "scheme", defs.Authorization.Scheme, "URI scheme the wallet is invoked with")
	command.Flags().StringVar(&request.ClientID, "client-id", "", "Client ID of the verifier")
	command.Flags().StringVar(&request.Request, "request", "", "Request object passed by value")
	command.Flags().StringVar(&request.RequestURI, "request-uri", "", "URI the wallet retrieves the request object from")
	command.Flags().StringVar(&requestURIMethod, "request-uri-method", "", "HTTP method the wallet uses to retrieve the request object: get or post")
	command.Flags().BoolVar(&printQR, "qr", false, "Print the URI as QR code on the terminal")
	command.Flags().StringVar(&pngFile, "png", "", "Write the URI as PNG QR code to this file")
	command.Flags().IntVar(&pngSize, "size", defs.Authorization.QR.Size, "Width and height in pixels of the PNG QR code")
	_ = command.MarkFlagRequired("client-id")
	return command
}
