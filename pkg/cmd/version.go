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
	"io"

	"github.com/gke-labs/dirwalk/pkg/version"
	"github.com/spf13/cobra"
)

// BuildVersionCommand constructs the cobra command for "version".
func BuildVersionCommand(_ *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunVersion(cmd.OutOrStdout())
		},
	}

	return cmd
}

// RunVersion executes the business logic for the "version" command.
func RunVersion(out io.Writer) error {
	info, err := version.Get()
	if err != nil {
		return err
	}
	info.Print(out)
	return nil
}
