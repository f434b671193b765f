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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gke-labs/dirwalk/pkg/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// RootOptions holds the configuration for the root command.
type RootOptions struct {
	ConfigFile string
	Extensions []string
	Exclude    []string
	Output     string
	Color      string
}

// BuildRootCommand constructs the root cobra command.
func BuildRootCommand() *cobra.Command {
	var opt RootOptions

	cmd := &cobra.Command{
		Use:          "dirwalk",
		Short:        "dirwalk lists the regular files below a directory",
		SilenceUsage: true,
	}

	fs := cmd.PersistentFlags()
	opt.AddFlags(fs)

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	cmd.AddCommand(BuildListCommand(&opt))
	cmd.AddCommand(BuildWalkCommand(&opt))
	cmd.AddCommand(BuildVersionCommand(&opt))

	return cmd
}

// AddFlags registers the traversal flags on fs.
func (o *RootOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", "", "configuration file (.yaml/.yml, or directive format)")
	fs.StringSliceVar(&o.Extensions, "ext", nil, "only report files with these extensions")
	fs.StringSliceVar(&o.Exclude, "exclude", nil, "ignore files matching these patterns, relative to the root")
	fs.StringVarP(&o.Output, "output", "o", "", "output format: text, json or yaml")
	fs.StringVar(&o.Color, "color", "auto", "color text output: auto, always or never")
}

// loadConfig reads the configuration file, if any, and applies the flags on top.
func (o *RootOptions) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, err
	}
	if len(o.Extensions) != 0 {
		cfg.Extensions = o.Extensions
	}
	if len(o.Exclude) != 0 {
		cfg.Exclude = o.Exclude
	}
	if o.Output != "" {
		cfg.Output = o.Output
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// useColor decides whether text written to out is colored.
func (o *RootOptions) useColor(out io.Writer) (bool, error) {
	switch o.Color {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := out.(*os.File)
		return ok && isatty.IsTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto, always or never)", o.Color)
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := BuildRootCommand()
	return rootCmd.ExecuteContext(ctx)
}
