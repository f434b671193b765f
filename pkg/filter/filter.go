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

// Package filter builds walker.Filter predicates.
package filter

import (
	"path/filepath"
	"strings"

	"github.com/gke-labs/dirwalk/pkg/walker"
)

// Extensions accepts paths whose extension is one of exts, ignoring case.
// Extensions may be given with or without the leading dot.
// With no extensions every path is accepted.
func Extensions(exts ...string) walker.Filter {
	if len(exts) == 0 {
		return walker.AcceptAll
	}
	want := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		want[ext] = true
	}
	return func(p string) bool {
		return want[strings.ToLower(filepath.Ext(p))]
	}
}

// Exclude rejects paths that the ignore patterns match, relative to root.
// Paths outside root are accepted.
func Exclude(root string, patterns []string) walker.Filter {
	if len(patterns) == 0 {
		return walker.AcceptAll
	}
	ignore := NewIgnoreList(patterns)
	return func(p string) bool {
		rel, err := filepath.Rel(root, p)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
		return !ignore.ShouldIgnoreFile(rel)
	}
}

// Not inverts f.
func Not(f walker.Filter) walker.Filter {
	return func(p string) bool {
		return !f(p)
	}
}

// All accepts a path when every filter does. Nil filters are skipped.
func All(filters ...walker.Filter) walker.Filter {
	return func(p string) bool {
		for _, f := range filters {
			if f != nil && !f(p) {
				return false
			}
		}
		return true
	}
}

// Any accepts a path when at least one filter does.
func Any(filters ...walker.Filter) walker.Filter {
	return func(p string) bool {
		for _, f := range filters {
			if f != nil && f(p) {
				return true
			}
		}
		return false
	}
}
