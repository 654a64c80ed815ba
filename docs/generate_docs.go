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
	"bytes"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
	"github.com/vp-conformance/testbed/cmd"
	"github.com/vp-conformance/testbed/core"
)

const docsDirectory = "docs/pages"

func generateDocs() {
	system := cmd.CreateSystem()
	if err := os.MkdirAll(docsDirectory, os.ModePerm); err != nil {
		panic(err)
	}
	generateServerOptions(system)
	generateCLICommands(system)
}

func generateCLICommands(system *core.System) {
	buf := new(bytes.Buffer)
	buf.WriteString("# Testbed CLI command reference\n")
	if err := GenerateCommandDocs(cmd.CreateCommand(system), buf); err != nil {
		panic(err)
	}
	writeDocsFile(path.Join(docsDirectory, "cli.md"), buf.Bytes())
}

func generateServerOptions(system *core.System) {
	flags := make(map[string]*pflag.FlagSet)
	// Resolve server command flags
	serverCommand, _, err := cmd.CreateCommand(system).Find([]string{"server"})
	if err != nil {
		panic(err)
	}
	globalFlags := serverCommand.Flags()
	// Now index the flags by engine
	flags[""] = globalFlags
	system.VisitEngines(func(engine core.Engine) {
		if m, ok := engine.(core.Injectable); ok {
			flagsForEngine := extractFlagsForEngine(strings.ToLower(m.Name()), globalFlags)
			if flagsForEngine.HasAvailableFlags() {
				flags[m.Name()] = flagsForEngine
			}
		}
	})
	buf := new(bytes.Buffer)
	buf.WriteString("# Server options\n\n")
	generatePartitionedConfigOptionsDocs(buf, flags)
	writeDocsFile(path.Join(docsDirectory, "server_options.md"), buf.Bytes())
}

func extractFlagsForEngine(configKey string, flagSet *pflag.FlagSet) *pflag.FlagSet {
	result := pflag.FlagSet{}
	flagSet.VisitAll(func(current *pflag.Flag) {
		if strings.HasPrefix(current.Name, configKey+".") {
			// This flag belongs to this engine, so copy it and hide it in the input flag set
			flagCopy := *current
			current.Hidden = true
			result.AddFlag(&flagCopy)
		}
	})
	return &result
}

func generatePartitionedConfigOptionsDocs(writer io.Writer, flags map[string]*pflag.FlagSet) {
	sortedKeys := make([]string, 0)
	for key := range flags {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Strings(sortedKeys)

	optionsTable := table.NewWriter()
	optionsTable.SetOutputMirror(writer)
	optionsTable.AppendHeader(table.Row{"Key", "Default", "Description"})
	for _, key := range sortedKeys {
		if key != "" {
			optionsTable.AppendRow(table.Row{"**" + key + "**", "", ""})
		}
		for _, row := range flagsToSortedRows(flags[key]) {
			optionsTable.AppendRow(row)
		}
	}
	optionsTable.RenderMarkdown()
}

func flagsToSortedRows(flags *pflag.FlagSet) []table.Row {
	var flagList []*pflag.Flag
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			flagList = append(flagList, f)
		}
	})
	// We want global properties (the ones without dots) to appear at the top, so we need some custom sorting
	sort.Slice(flagList, func(i, j int) bool {
		s1 := flagList[i].Name
		s2 := flagList[j].Name
		if strings.Contains(s1, ".") != strings.Contains(s2, ".") {
			return !strings.Contains(s1, ".")
		}
		return s1 < s2
	})
	rows := make([]table.Row, 0, len(flagList))
	for _, f := range flagList {
		rows = append(rows, table.Row{f.Name, f.DefValue, f.Usage})
	}
	return rows
}

func writeDocsFile(fileName string, data []byte) {
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		panic(err)
	}
}
