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

// Package walker lists the regular files under a directory, either the
// directory's own entries (List) or the whole tree below it (Walk).
//
// Paths are visited breadth first. Symbolic links are treated as
// directories; a link that cannot be opened as one is reported as a file.
// Walk expands every directory at most once, keyed by its canonical path,
// so link cycles terminate.
package walker

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
)

var (
	// ErrOpenDirectory is returned when an entry that was classified as a
	// directory cannot be opened.
	ErrOpenDirectory = errors.New("directory unreadable after successful status check")
	// ErrReadDirectory is returned when listing an open directory fails.
	ErrReadDirectory = errors.New("unable to read directory entries")
	// ErrCloseDirectory is returned when a directory handle cannot be closed.
	ErrCloseDirectory = errors.New("unable to close directory")
)

// Filter returns true if the file at path should be included.
type Filter func(path string) bool

// AcceptAll is the Filter used when none is given.
func AcceptAll(string) bool { return true }

// Options configures a Walker.
type Options struct {
	// FS defaults to OS.
	FS FileSystem
	// Logger receives warnings about skipped entries. Defaults to a discarding logger.
	Logger logr.Logger
	// Getenv looks up the home directory. Defaults to os.Getenv.
	Getenv func(key string) string
}

// InitDefaults fills in unset fields.
func (o *Options) InitDefaults() {
	if o.FS == nil {
		o.FS = OS
	}
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
}

// Walker runs traversals. It holds no per-call state and may be shared.
type Walker struct {
	fs     FileSystem
	log    logr.Logger
	getenv func(string) string
}

// New creates a Walker.
func New(opt Options) *Walker {
	opt.InitDefaults()
	return &Walker{
		fs:     opt.FS,
		log:    opt.Logger,
		getenv: opt.Getenv,
	}
}

// List returns the regular files directly inside root that pass filter.
// Subdirectories are not descended into.
func List(root string, filter Filter) ([]string, error) {
	return New(Options{}).List(root, filter)
}

// Walk returns the regular files anywhere below root that pass filter.
func Walk(root string, filter Filter) ([]string, error) {
	return New(Options{}).Walk(root, filter)
}

// List returns the regular files directly inside root that pass filter.
func (w *Walker) List(root string, filter Filter) ([]string, error) {
	return w.traverse(root, filter, false)
}

// Walk returns the regular files anywhere below root that pass filter.
func (w *Walker) Walk(root string, filter Filter) ([]string, error) {
	return w.traverse(root, filter, true)
}

// NormalizeRoot returns root as List and Walk prefix the reported paths:
// a leading "~" is replaced by the home directory and one trailing
// separator is dropped unless root is a filesystem root.
func (w *Walker) NormalizeRoot(root string) (string, error) {
	dir, err := ExpandHome(root, w.getenv)
	if err != nil {
		return "", err
	}
	return trimTrailingSeparator(dir), nil
}

func (w *Walker) traverse(root string, filter Filter, recursive bool) ([]string, error) {
	if root == "" {
		return nil, nil
	}
	if filter == nil {
		filter = AcceptAll
	}

	dir, err := w.NormalizeRoot(root)
	if err != nil {
		return nil, err
	}

	var (
		files    []string
		expanded bool
		visited  = make(visitedSet)
		queue    = newFrontier(dir)
	)
	for !queue.empty() {
		path := queue.pop()

		kind := w.classify(path)
		switch kind {
		case Unreadable:
			continue

		case Regular:
			if filter(path) {
				files = append(files, path)
			}

		case Directory, SymLink:
			if recursive {
				if !w.firstVisit(visited, path) {
					continue
				}
			} else {
				if expanded {
					continue
				}
				expanded = true
			}

			d, err := w.fs.OpenDir(path)
			if err != nil {
				if kind == SymLink {
					// A link to something other than a directory, or a dangling one.
					w.log.V(2).Info("Treating symbolic link as a file", "path", path)
					if filter(path) {
						files = append(files, path)
					}
					continue
				}
				return nil, fmt.Errorf("%w: %w", ErrOpenDirectory, err)
			}
			names, err := w.readNames(d, path)
			if err != nil {
				return nil, err
			}
			for _, name := range names {
				if name == "." || name == ".." {
					continue
				}
				queue.push(joinChild(path, name))
			}

		default:
			w.log.Info("Ignoring "+kind.String(), "path", path)
		}
	}
	return files, nil
}

// classify lstats path and checks it is readable. Failures are logged and
// reported as Unreadable.
func (w *Walker) classify(path string) FileKind {
	info, err := w.fs.Lstat(path)
	if err != nil {
		w.log.Error(err, "Unable to access file", "path", path)
		return Unreadable
	}
	if err := w.fs.Access(path); err != nil {
		w.log.Error(err, "Unable to read file", "path", path)
		return Unreadable
	}
	return kindOf(info.Mode())
}

// readNames lists d and closes it on every path.
func (w *Walker) readNames(d Dir, path string) (names []string, err error) {
	defer func() {
		if closeErr := d.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("%w %s: %w", ErrCloseDirectory, path, closeErr))
			names = nil
		}
	}()

	names, err = d.ReadNames()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadDirectory, path, err)
	}
	w.log.V(4).Info("Expanding directory", "path", path, "entries", len(names))
	return names, nil
}
