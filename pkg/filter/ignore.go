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

package filter

import (
	"path"
	"path/filepath"
	"strings"
)

// IgnoreList matches root-relative paths against gitignore-like patterns.
type IgnoreList struct {
	patterns []pattern
}

type pattern struct {
	glob string
	// dirOnly patterns end in "/" and never match a plain file by themselves.
	dirOnly bool
	// anyDepth patterns start with "**/".
	anyDepth bool
	// anchored patterns contain a "/" and match the full relative path.
	anchored bool
}

// NewIgnoreList creates an IgnoreList.
func NewIgnoreList(patterns []string) *IgnoreList {
	l := &IgnoreList{}
	for _, raw := range patterns {
		if raw == "" {
			continue
		}
		p := pattern{glob: raw}
		if strings.HasPrefix(p.glob, "**/") {
			p.anyDepth = true
			p.glob = strings.TrimPrefix(p.glob, "**/")
		}
		if strings.HasSuffix(p.glob, "/") {
			p.dirOnly = true
			p.glob = strings.TrimSuffix(p.glob, "/")
		}
		p.anchored = !p.anyDepth && strings.Contains(raw, "/")
		l.patterns = append(l.patterns, p)
	}
	return l
}

// ShouldIgnore returns true if rel should be ignored.
// rel is relative to the root of the walk and may use OS separators.
func (l *IgnoreList) ShouldIgnore(rel string, isDir bool) bool {
	rel = filepath.ToSlash(rel)
	for _, p := range l.patterns {
		if p.match(rel, isDir) {
			return true
		}
	}
	return false
}

// ShouldIgnoreFile reports whether the file at rel, or any directory above
// it, is ignored. The walk reports files only, so directory patterns are
// checked against each parent of rel.
func (l *IgnoreList) ShouldIgnoreFile(rel string) bool {
	rel = filepath.ToSlash(rel)
	if l.ShouldIgnore(rel, false) {
		return true
	}
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if l.ShouldIgnore(dir, true) {
			return true
		}
	}
	return false
}

func (p pattern) match(rel string, isDir bool) bool {
	if p.dirOnly && !isDir {
		return false
	}

	if p.anyDepth {
		if !strings.Contains(p.glob, "/") {
			if ok, _ := path.Match(p.glob, path.Base(rel)); ok {
				return true
			}
		}
		return rel == p.glob || strings.HasSuffix(rel, "/"+p.glob)
	}

	if p.anchored {
		ok, _ := path.Match(p.glob, rel)
		return ok
	}

	ok, _ := path.Match(p.glob, path.Base(rel))
	return ok
}
