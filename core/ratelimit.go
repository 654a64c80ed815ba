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
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// rateLimiterExpiry is how long the limiter of a client is kept after its last request.
const rateLimiterExpiry = 3 * time.Minute

// HTTPRateLimitConfig limits the number of requests per client.
type HTTPRateLimitConfig struct {
	// Requests is the sustained number of requests per second a client may make. 0 disables rate limiting.
	Requests float64 `koanf:"requests"`
	// Burst is the number of requests a client may make at once.
	Burst int `koanf:"burst"`
}

// Enabled returns whether rate limiting is enabled according to this configuration.
func (cfg HTTPRateLimitConfig) Enabled() bool {
	return cfg.Requests > 0
}

// newRateLimiter limits requests per client, identified by its (forwarded) IP address.
// Status requests are never limited, so liveness probes keep working under load.
func newRateLimiter(cfg HTTPRateLimitConfig) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: isStatusRequest,
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return &echo.HTTPError{
				Code:     middleware.ErrExtractorError.Code,
				Message:  middleware.ErrExtractorError.Message,
				Internal: err,
			}
		},
		DenyHandler: func(_ echo.Context, identifier string, err error) error {
			Logger().WithField("remote_ip", identifier).Warn("Rate limit exceeded")
			return &echo.HTTPError{
				Code:     middleware.ErrRateLimitExceeded.Code,
				Message:  middleware.ErrRateLimitExceeded.Message,
				Internal: err,
			}
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.Requests),
			Burst:     cfg.Burst,
			ExpiresIn: rateLimiterExpiry,
		}),
	})
}
