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

package walker

import "path/filepath"

// frontier is the FIFO of paths still to classify.
type frontier struct {
	head *node
	tail *node
}

type node struct {
	next  *node
	value string
}

func newFrontier(root string) *frontier {
	n := &node{value: root}
	return &frontier{head: n, tail: n}
}

func (f *frontier) empty() bool {
	return f.head == nil
}

func (f *frontier) push(path string) {
	n := &node{value: path}
	if f.tail == nil {
		f.head = n
	} else {
		f.tail.next = n
	}
	f.tail = n
}

func (f *frontier) pop() string {
	n := f.head
	f.head = n.next
	if f.head == nil {
		f.tail = nil
	}
	return n.value
}

// visitedSet holds the canonical paths of directories already expanded.
type visitedSet map[string]struct{}

// firstVisit records the canonical form of path and reports whether this is
// the first time it has been seen.
func (w *Walker) firstVisit(visited visitedSet, path string) bool {
	key, err := w.fs.RealPath(path)
	if err != nil {
		// Dangling links have no canonical form; key them by their own absolute path.
		w.log.V(4).Info("Unable to resolve path", "path", path, "err", err.Error())
		key = path
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
	}
	if _, ok := visited[key]; ok {
		w.log.V(2).Info("Skipping directory already visited", "path", path, "canonical", key)
		return false
	}
	visited[key] = struct{}{}
	return true
}
