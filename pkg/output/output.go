// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output renders traversal results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats, default first.
var Formats = []Format{Text, JSON, YAML}

// ParseFormat returns the Format named s. An empty s selects Text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Text, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %v)", s, Formats)
}

// Result is the document written for the json and yaml formats.
type Result struct {
	Files []string `json:"files" yaml:"files"`
}

// Write renders paths to w in the given format, without color.
func Write(w io.Writer, format Format, paths []string) error {
	return Printer{Format: format}.Print(w, paths)
}

// Printer renders traversal results.
type Printer struct {
	Format Format
	// Color highlights the file name in text output.
	Color bool
}

// Print renders paths to w.
func (p Printer) Print(w io.Writer, paths []string) error {
	switch p.Format {
	case Text, "":
		line := fmt.Sprint
		if p.Color {
			line = colorize
		}
		for _, path := range paths {
			if _, err := fmt.Fprintln(w, line(path)); err != nil {
				return err
			}
		}
		return nil

	case JSON:
		data, err := json.MarshalIndent(newResult(paths), "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newResult(paths)); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown output format %q", p.Format)
	}
}

var (
	dirColor  = forced(color.New(color.FgBlue))
	nameColor = forced(color.New(color.Bold))
)

// forced enables c regardless of color.NoColor.
func forced(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}

func colorize(a ...any) string {
	dir, name := filepath.Split(fmt.Sprint(a...))
	if dir == "" {
		return nameColor.Sprint(name)
	}
	return dirColor.Sprint(dir) + nameColor.Sprint(name)
}

func newResult(paths []string) Result {
	if paths == nil {
		paths = []string{}
	}
	return Result{Files: paths}
}
