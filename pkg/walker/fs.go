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
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FileSystem is the set of filesystem primitives a Walker is built on.
type FileSystem interface {
	// Lstat returns the status of name without following a final symbolic link.
	Lstat(name string) (fs.FileInfo, error)
	// Access returns nil if name is readable by the calling process.
	// A final symbolic link is not followed.
	Access(name string) error
	// OpenDir opens name for listing. It fails if name does not resolve to a directory.
	OpenDir(name string) (Dir, error)
	// RealPath returns the absolute, symlink-free form of name.
	RealPath(name string) (string, error)
}

// Dir is an open directory handle.
type Dir interface {
	// ReadNames returns the names of all entries in the directory.
	ReadNames() ([]string, error)
	Close() error
}

// OS is the FileSystem backed by the host operating system.
var OS FileSystem = osFS{}

type osFS struct{}

func (osFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (osFS) RealPath(name string) (string, error) {
	resolved, err := filepath.EvalSymlinks(name)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

type osDir struct {
	f *os.File
}

// ReadNames returns the entry names sorted, so repeated listings of an
// unchanged directory come back in the same order.
func (d osDir) ReadNames() ([]string, error) {
	names, err := d.f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (d osDir) Close() error {
	return d.f.Close()
}
