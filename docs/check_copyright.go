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
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var yearRegex = regexp.MustCompilePOSIX("Copyright \\(C\\) ([0-9]{4})(\\.?) Nuts community")

var yearRegexReplacement = fmt.Sprintf("Copyright (C) %d Nuts community", time.Now().Year())

var copyrightText = fmt.Sprintf(`/*
 * %s
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

`, yearRegexReplacement)

// skippedDirectories aren't part of the module's own sources.
var skippedDirectories = []string{"_examples", "vendor", ".git"}

func fixCopyright() {
	dir := "./"
	// Assert we're in the right directory
	if _, err := os.Stat(path.Join(dir, "go.mod")); err != nil {
		panic("incorrect directory")
	}

	err := filepath.Walk(dir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				for _, skipped := range skippedDirectories {
					if info.Name() == skipped {
						return filepath.SkipDir
					}
				}
				return nil
			}
			fixed, changed, err := fixCopyrightNotice(path)
			if err != nil || !changed {
				return err
			}
			println("Fixing copyright notice on", path)
			return os.WriteFile(path, []byte(fixed), info.Mode())
		})
	if err != nil {
		panic(err)
	}
}

// fixCopyrightNotice returns the contents of the Go source file at the given path with an up-to-date copyright notice.
// Mocks and generated code are left alone.
func fixCopyrightNotice(file string) (string, bool, error) {
	name := filepath.Base(file)
	if !strings.HasSuffix(name, ".go") || strings.Contains(name, "mock") {
		return "", false, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", false, err
	}
	dataStr := string(data)
	if strings.Contains(dataStr, "DO NOT EDIT") {
		// Generated code
		return "", false, nil
	}
	// Looking for "Copyright (C) (year) Nuts community"
	if strings.Contains(dataStr, "Copyright (C)") && strings.Contains(dataStr, "Nuts community") {
		// See if we have to adjust the year
		dataWithYear := string(yearRegex.ReplaceAll(data, []byte(yearRegexReplacement)))
		return dataWithYear, dataWithYear != dataStr, nil
	}
	return copyrightText + dataStr, true, nil
}
