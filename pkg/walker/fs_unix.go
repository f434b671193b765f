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

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package walker

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// Access checks read permission with faccessat(2). AT_SYMLINK_NOFOLLOW keeps
// a dangling link from being reported as unreadable.
func (osFS) Access(name string) error {
	for {
		err := unix.Faccessat(unix.AT_FDCWD, name, unix.R_OK, unix.AT_SYMLINK_NOFOLLOW)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return &fs.PathError{Op: "access", Path: name, Err: err}
		}
		return nil
	}
}

// OpenDir opens name with O_DIRECTORY, so a symlink to a regular file fails
// here with ENOTDIR just like opendir(3).
func (osFS) OpenDir(name string) (Dir, error) {
	for {
		fd, err := unix.Open(name, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, &fs.PathError{Op: "opendir", Path: name, Err: err}
		}
		return osDir{f: os.NewFile(uintptr(fd), name)}, nil
	}
}
