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
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrUserHome is returned for paths such as "~someone/dir".
var ErrUserHome = errors.New("cannot expand the home directory of another user")

const separator = string(filepath.Separator)

// HomeEnv is the environment variable holding the current user's home directory.
func HomeEnv() string {
	if runtime.GOOS == "windows" {
		return "USERPROFILE"
	}
	return "HOME"
}

// ExpandHome replaces a leading "~" with the home directory read through getenv
// (os.Getenv when nil). If the variable is empty the path is returned as is.
func ExpandHome(path string, getenv func(string) string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) >= 2 && !os.IsPathSeparator(path[1]) {
		return "", fmt.Errorf("%w: %q", ErrUserHome, path)
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	home := getenv(HomeEnv())
	if home == "" {
		return path, nil
	}
	return home + path[1:], nil
}

// isRoot reports whether path is the top of a filesystem ("/" or "C:\").
func isRoot(path string) bool {
	return path == filepath.VolumeName(path)+separator
}

// trimTrailingSeparator removes one trailing separator, leaving roots alone.
func trimTrailingSeparator(path string) string {
	if len(path) <= 1 || isRoot(path) || !os.IsPathSeparator(path[len(path)-1]) {
		return path
	}
	return path[:len(path)-1]
}

// joinChild appends name to dir with exactly one separator. Unlike
// filepath.Join it does not clean dir, so results keep the caller's spelling.
func joinChild(dir, name string) string {
	if isRoot(dir) {
		return dir + name
	}
	return dir + separator + name
}
