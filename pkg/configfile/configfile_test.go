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

package configfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type directive struct {
	Name string
	Args []string
	Line int
}

type recordingHook struct {
	directives []directive
	verified   bool
	rejectName string
	verifyErr  error
}

func (h *recordingHook) SetVariable(name string, args []string, line int) error {
	if name == h.rejectName {
		return errors.New("unknown directive " + name)
	}
	h.directives = append(h.directives, directive{Name: name, Args: args, Line: line})
	return nil
}

func (h *recordingHook) Verify() error {
	h.verified = true
	return h.verifyErr
}

func TestParse(t *testing.T) {
	input := `# leading comment

ext .jpg .png   # images
exclude 'my dir/' tmp
  recursive no
`
	hook := &recordingHook{}
	if err := Parse(context.Background(), strings.NewReader(input), "test.conf", hook); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []directive{
		{Name: "ext", Args: []string{".jpg", ".png"}, Line: 3},
		{Name: "exclude", Args: []string{"my dir/", "tmp"}, Line: 4},
		{Name: "recursive", Args: []string{"no"}, Line: 5},
	}
	if !reflect.DeepEqual(hook.directives, want) {
		t.Errorf("directives = %+v, want %+v", hook.directives, want)
	}
	if !hook.verified {
		t.Errorf("Verify was not called")
	}
}

func TestParseRejectedDirective(t *testing.T) {
	hook := &recordingHook{rejectName: "bogus"}
	err := Parse(context.Background(), strings.NewReader("ext .jpg\nbogus 1\n"), "test.conf", hook)

	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected LineError, got %v", err)
	}
	if lineErr.Line != 2 || lineErr.File != "test.conf" {
		t.Errorf("LineError = %+v, want test.conf line 2", lineErr)
	}
	if hook.verified {
		t.Errorf("Verify should not run after a rejected directive")
	}
}

func TestParseVerifyError(t *testing.T) {
	verifyErr := errors.New("output is required")
	hook := &recordingHook{verifyErr: verifyErr}
	err := Parse(context.Background(), strings.NewReader(""), "test.conf", hook)
	if !errors.Is(err, verifyErr) {
		t.Errorf("Parse error = %v, want %v", err, verifyErr)
	}
}

func TestReadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	if err := os.WriteFile(filepath.Join(home, "dirwalk.conf"), []byte("output json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	hook := &recordingHook{}
	if err := Read(context.Background(), "~/dirwalk.conf", hook); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(hook.directives) != 1 || hook.directives[0].Name != "output" {
		t.Errorf("directives = %+v", hook.directives)
	}
}

func TestReadMissingFile(t *testing.T) {
	err := Read(context.Background(), filepath.Join(t.TempDir(), "missing.conf"), &recordingHook{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Read error = %v, want ErrNotExist", err)
	}
}
