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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// GenerateCommandDocs writes a Markdown section for every runnable command in the tree, depth first.
// Commands that only group subcommands (like `validate`) get no section of their own.
func GenerateCommandDocs(cmd *cobra.Command, writer io.Writer) error {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()

	if cmd.Runnable() {
		if _, err := io.WriteString(writer, commandSection(cmd)); err != nil {
			return err
		}
	}
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() || sub.IsAdditionalHelpTopicCommand() {
			continue
		}
		if err := GenerateCommandDocs(sub, writer); err != nil {
			return err
		}
	}
	return nil
}

// commandSection renders the heading, description, usage line and flags of a command.
// The heading is nested one level per word of the command path, so `testbed server` is a level 3 heading.
func commandSection(cmd *cobra.Command) string {
	path := cmd.CommandPath()
	description := cmd.Long
	if description == "" {
		description = cmd.Short
	}

	var section strings.Builder
	_, _ = fmt.Fprintf(&section, "\n%s %s\n\n%s\n\n", strings.Repeat("#", len(strings.Fields(path))+1), path, description)
	section.WriteString("```\n")
	section.WriteString(cmd.UseLine())
	section.WriteString("\n")
	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		section.WriteString("\nFlags:\n")
		section.WriteString(flags.FlagUsages())
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		section.WriteString("\nGlobal flags:\n")
		section.WriteString(flags.FlagUsages())
	}
	section.WriteString("```\n")
	return section.String()
}
