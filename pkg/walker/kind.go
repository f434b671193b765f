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

import "io/fs"

// FileKind is the type of a filesystem entry at the moment it was classified.
type FileKind int

const (
	// Unreadable means the status or the permission lookup failed.
	Unreadable FileKind = iota
	Regular
	Directory
	SymLink
	CharDevice
	BlockDevice
	Fifo
	Socket
	// Other is any type the host reports that is none of the above.
	Other
)

func (k FileKind) String() string {
	switch k {
	case Unreadable:
		return "unreadable"
	case Regular:
		return "regular file"
	case Directory:
		return "directory"
	case SymLink:
		return "symbolic link"
	case CharDevice:
		return "character special file"
	case BlockDevice:
		return "block special file"
	case Fifo:
		return "pipe file"
	case Socket:
		return "socket file"
	default:
		return "unknown file type"
	}
}

func kindOf(mode fs.FileMode) FileKind {
	switch {
	case mode.IsRegular():
		return Regular
	case mode&fs.ModeSymlink != 0:
		return SymLink
	case mode.IsDir():
		return Directory
	case mode&fs.ModeCharDevice != 0:
		return CharDevice
	case mode&fs.ModeDevice != 0:
		return BlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return Fifo
	case mode&fs.ModeSocket != 0:
		return Socket
	}
	return Other
}
