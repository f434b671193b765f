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

import (
	"errors"
	"io/fs"
	"path"
	"strings"
	"time"
)

// fakeNode is one entry of a fakeFS. Paths in a fakeFS always use "/".
type fakeNode struct {
	mode     fs.FileMode
	target   string   // symlink target, absolute
	children []string // directory entry names, returned in this order

	lstatErr  error
	accessErr error
	openErr   error
	readErr   error
	closeErr  error
}

// fakeFS is an in-memory FileSystem that records every call made to it.
type fakeFS struct {
	nodes  map[string]*fakeNode
	calls  []string
	closed int
}

var (
	errFakeNotDir = errors.New("not a directory")
	errFakeLoop   = errors.New("too many levels of symbolic links")
)

func (f *fakeFS) Lstat(name string) (fs.FileInfo, error) {
	f.calls = append(f.calls, "lstat "+name)
	n, err := f.lookup(name, false)
	if err != nil {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: err}
	}
	if n.lstatErr != nil {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: n.lstatErr}
	}
	return fakeInfo{name: path.Base(name), mode: n.mode}, nil
}

func (f *fakeFS) Access(name string) error {
	f.calls = append(f.calls, "access "+name)
	n, err := f.lookup(name, false)
	if err != nil {
		return &fs.PathError{Op: "access", Path: name, Err: err}
	}
	if n.accessErr != nil {
		return &fs.PathError{Op: "access", Path: name, Err: n.accessErr}
	}
	return nil
}

func (f *fakeFS) OpenDir(name string) (Dir, error) {
	f.calls = append(f.calls, "opendir "+name)
	if n, err := f.lookup(name, false); err == nil && n.openErr != nil {
		return nil, &fs.PathError{Op: "opendir", Path: name, Err: n.openErr}
	}
	n, err := f.lookup(name, true)
	if err != nil {
		return nil, &fs.PathError{Op: "opendir", Path: name, Err: err}
	}
	if !n.mode.IsDir() {
		return nil, &fs.PathError{Op: "opendir", Path: name, Err: errFakeNotDir}
	}
	return &fakeDir{fs: f, node: n}, nil
}

func (f *fakeFS) RealPath(name string) (string, error) {
	f.calls = append(f.calls, "realpath "+name)
	resolved, err := f.resolve(name, true)
	if err != nil {
		return "", err
	}
	if _, ok := f.nodes[resolved]; !ok {
		return "", fs.ErrNotExist
	}
	return resolved, nil
}

func (f *fakeFS) lookup(name string, followLast bool) (*fakeNode, error) {
	resolved, err := f.resolve(name, followLast)
	if err != nil {
		return nil, err
	}
	n, ok := f.nodes[resolved]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return n, nil
}

// resolve replaces symlinks along name with their targets. Targets are
// expected to be canonical already. Missing elements are left as they are.
func (f *fakeFS) resolve(name string, followLast bool) (string, error) {
	if name == "/" {
		return name, nil
	}
	parts := strings.Split(strings.TrimPrefix(name, "/"), "/")
	cur := "/"
	for i, part := range parts {
		last := i == len(parts)-1
		next := path.Join(cur, part)
		for hops := 0; ; hops++ {
			if hops > 16 {
				return "", errFakeLoop
			}
			n, ok := f.nodes[next]
			if !ok || n.mode&fs.ModeSymlink == 0 || (last && !followLast) {
				break
			}
			next = n.target
		}
		cur = next
	}
	return cur, nil
}

type fakeDir struct {
	fs   *fakeFS
	node *fakeNode
}

func (d *fakeDir) ReadNames() ([]string, error) {
	if d.node.readErr != nil {
		return nil, d.node.readErr
	}
	return append([]string(nil), d.node.children...), nil
}

func (d *fakeDir) Close() error {
	d.fs.closed++
	return d.node.closeErr
}

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }

func dirNode(children ...string) *fakeNode {
	return &fakeNode{mode: fs.ModeDir | 0755, children: children}
}

func fileNode() *fakeNode {
	return &fakeNode{mode: 0644}
}

func linkNode(target string) *fakeNode {
	return &fakeNode{mode: fs.ModeSymlink | 0777, target: target}
}
