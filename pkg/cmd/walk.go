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

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/gke-labs/dirwalk/pkg/output"
	"github.com/gke-labs/dirwalk/pkg/walker"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// WalkOptions holds the configuration for the "walk" and "list" commands.
type WalkOptions struct {
	*RootOptions

	Root string
	// Recursive is false for "list". For "walk" the configuration file may
	// still turn recursion off.
	Recursive bool
}

// BuildWalkCommand constructs the cobra command for "walk".
func BuildWalkCommand(rootOpt *RootOptions) *cobra.Command {
	opt := WalkOptions{
		RootOptions: rootOpt,
		Recursive:   true,
	}

	cmd := &cobra.Command{
		Use:   "walk <dir>",
		Short: "Print the regular files anywhere below a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.Root = args[0]
			return RunWalk(cmd.Context(), opt, cmd.OutOrStdout())
		},
	}

	return cmd
}

// RunWalk executes the business logic for the "walk" and "list" commands.
func RunWalk(ctx context.Context, opt WalkOptions, out io.Writer) error {
	log := klog.FromContext(ctx)

	cfg, err := opt.loadConfig(ctx)
	if err != nil {
		return err
	}
	color, err := opt.useColor(out)
	if err != nil {
		return err
	}

	w := walker.New(walker.Options{Logger: log})
	root, err := w.NormalizeRoot(opt.Root)
	if err != nil {
		return err
	}
	filter := cfg.Filter(root)

	var files []string
	if opt.Recursive && cfg.IsRecursive() {
		log.V(2).Info("Walking", "root", root)
		files, err = w.Walk(root, filter)
	} else {
		log.V(2).Info("Listing", "root", root)
		files, err = w.List(root, filter)
	}
	if err != nil {
		return fmt.Errorf("error traversing %s: %w", opt.Root, err)
	}
	log.V(2).Info("Traversal complete", "root", root, "files", len(files))

	printer := output.Printer{Format: cfg.OutputFormat(), Color: color}
	return printer.Print(out, files)
}
