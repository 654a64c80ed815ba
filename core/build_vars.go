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
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build information, set at link time: go build -ldflags "-X github.com/vp-conformance/testbed/core.GitVersion=v1.0.0".

// GitCommit holds the git commit hash the binary is built from.
var GitCommit string

// GitVersion holds the git tag the binary is built from.
var GitVersion string

// GitBranch holds the git branch the binary is built from.
var GitBranch = "development"

// Version returns the git tag the binary is built from, or the branch if it isn't built from a tag.
func Version() string {
	if GitVersion != "" && GitVersion != "undefined" {
		return GitVersion
	}
	return GitBranch
}

// Commit returns the git commit the binary is built from. When not set at link time, the VCS revision embedded by the
// Go toolchain is used.
func Commit() string {
	if GitCommit != "" {
		return GitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// BuildInfo returns the version, commit, OS/architecture and Go version of the binary, one per line.
func BuildInfo() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "Git version: %s\n", Version())
	_, _ = fmt.Fprintf(&b, "Git commit: %s\n", Commit())
	_, _ = fmt.Fprintf(&b, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	_, _ = fmt.Fprintf(&b, "Go version: %s\n", runtime.Version())
	return b.String()
}
