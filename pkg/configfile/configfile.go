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

// Package configfile reads line-oriented directive files:
//
//	# comment
//	ext .jpg .png      # trailing comment
//	exclude 'my dir/'  # single quotes keep spaces together
//
// Each non-empty line is a directive name followed by its arguments.
package configfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gke-labs/dirwalk/pkg/text"
	"github.com/gke-labs/dirwalk/pkg/walker"
	"k8s.io/klog/v2"
)

// CommentMarker starts a comment that runs to the end of the line.
const CommentMarker = "#"

// Hook receives the directives of a file.
type Hook interface {
	// SetVariable is called once per directive line, in file order.
	SetVariable(name string, args []string, line int) error
	// Verify is called after the last line has been read.
	Verify() error
}

// LineError reports a directive that the Hook rejected.
type LineError struct {
	File string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Read parses the file at path into hook. A leading "~" in path is expanded.
func Read(ctx context.Context, path string, hook Hook) error {
	name, err := walker.ExpandHome(path, nil)
	if err != nil {
		return err
	}
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("unable to open file %q: %w", path, err)
	}
	defer f.Close()

	return Parse(ctx, f, name, hook)
}

// Parse reads directives from r. name is used in error messages.
func Parse(ctx context.Context, r io.Reader, name string, hook Hook) error {
	log := klog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		words := text.Split(text.RemoveComments(scanner.Text(), CommentMarker), text.Whitespace)
		if len(words) == 0 {
			continue
		}
		args, err := text.MergeQuoted(words[1:])
		if err != nil {
			log.Info("Erasing first quote", "file", name, "line", line, "reason", err.Error())
		}
		if err := hook.SetVariable(words[0], args, line); err != nil {
			return &LineError{File: name, Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}

	if err := hook.Verify(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
