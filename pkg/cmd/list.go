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
	"github.com/spf13/cobra"
)

// BuildListCommand constructs the cobra command for "list".
func BuildListCommand(rootOpt *RootOptions) *cobra.Command {
	opt := WalkOptions{
		RootOptions: rootOpt,
	}

	cmd := &cobra.Command{
		Use:   "list <dir>",
		Short: "Print the regular files directly inside a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.Root = args[0]
			return RunWalk(cmd.Context(), opt, cmd.OutOrStdout())
		},
	}

	return cmd
}
