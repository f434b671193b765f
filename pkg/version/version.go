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

package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Info is the version information embedded by the go toolchain.
type Info struct {
	Module   string
	Version  string
	Revision string
	Modified bool
}

// Get reads the build information of the running binary.
func Get() (*Info, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("failed to read build info")
	}
	return fromBuildInfo(info), nil
}

func fromBuildInfo(info *debug.BuildInfo) *Info {
	out := &Info{
		Module:  info.Main.Path,
		Version: info.Main.Version,
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Revision = setting.Value
		case "vcs.modified":
			out.Modified = setting.Value == "true"
		}
	}
	return out
}

// Print writes the version information to w.
func (i *Info) Print(w io.Writer) {
	fmt.Fprintf(w, "Module: %s\n", i.Module)
	if i.Version != "" {
		fmt.Fprintf(w, "Version: %s\n", i.Version)
	}

	if i.Revision == "" {
		fmt.Fprintln(w, "Git SHA: unknown")
		return
	}
	fmt.Fprintf(w, "Git SHA: %s", i.Revision)
	if i.Modified {
		fmt.Fprint(w, " (modified)")
	}
	fmt.Fprintln(w)
}
