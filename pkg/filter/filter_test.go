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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gke-labs/dirwalk/pkg/walker"
)

func TestExtensions(t *testing.T) {
	f := Extensions(".jpg", "PNG")
	grid := []struct {
		Path string
		Want bool
	}{
		{Path: "a.jpg", Want: true},
		{Path: "dir/a.JPG", Want: true},
		{Path: "a.png", Want: true},
		{Path: "a.pgm", Want: false},
		{Path: "jpg", Want: false},
	}
	for _, g := range grid {
		if got := f(g.Path); got != g.Want {
			t.Errorf("Extensions(.jpg, PNG)(%q) = %v, want %v", g.Path, got, g.Want)
		}
	}

	if !Extensions()("anything") {
		t.Errorf("Extensions() should accept everything")
	}
}

func TestExclude(t *testing.T) {
	root := filepath.FromSlash("/src/project")
	f := Exclude(root, []string{"vendor/", "*.log"})

	grid := []struct {
		Path string
		Want bool
	}{
		{Path: "/src/project/main.go", Want: true},
		{Path: "/src/project/vendor/x/y.go", Want: false},
		{Path: "/src/project/pkg/vendor/y.go", Want: true},
		{Path: "/src/project/out/build.log", Want: false},
		{Path: "/elsewhere/build.log", Want: true},
	}
	for _, g := range grid {
		if got := f(filepath.FromSlash(g.Path)); got != g.Want {
			t.Errorf("Exclude(%q)(%q) = %v, want %v", root, g.Path, got, g.Want)
		}
	}
}

func TestCombinators(t *testing.T) {
	jpg := Extensions("jpg")
	small := func(p string) bool { return len(p) < 6 }

	grid := []struct {
		Name   string
		Filter walker.Filter
		Path   string
		Want   bool
	}{
		{Name: "not", Filter: Not(jpg), Path: "a.jpg", Want: false},
		{Name: "not", Filter: Not(jpg), Path: "a.png", Want: true},
		{Name: "all", Filter: All(jpg, small), Path: "a.jpg", Want: true},
		{Name: "all", Filter: All(jpg, small), Path: "long.jpg", Want: false},
		{Name: "all-nil", Filter: All(nil, jpg), Path: "a.jpg", Want: true},
		{Name: "any", Filter: Any(jpg, small), Path: "long.jpg", Want: true},
		{Name: "any", Filter: Any(jpg, small), Path: "long.png", Want: false},
		{Name: "any-empty", Filter: Any(), Path: "a", Want: false},
	}
	for _, g := range grid {
		if got := g.Filter(g.Path); got != g.Want {
			t.Errorf("%s(%q) = %v, want %v", g.Name, g.Path, got, g.Want)
		}
	}
}

func TestExtensionsWithWalk(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"c.jpg", "d.jpg", "d.pgm", "sub_dir/e.pgm", "sub_dir/f.ppm"} {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := walker.Walk(root, Extensions("pgm", "ppm", "pbm"))
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	want := []string{
		filepath.Join(root, "d.pgm"),
		filepath.Join(root, "sub_dir", "e.pgm"),
		filepath.Join(root, "sub_dir", "f.ppm"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Walk = %v, want %v", files, want)
	}
}
