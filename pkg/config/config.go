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

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gke-labs/dirwalk/pkg/configfile"
	"github.com/gke-labs/dirwalk/pkg/filter"
	"github.com/gke-labs/dirwalk/pkg/output"
	"github.com/gke-labs/dirwalk/pkg/walker"
	"github.com/magiconair/properties"
	"sigs.k8s.io/yaml"
)

var ErrUnknownDirective = errors.New("unknown directive")

type Config struct {
	Recursive  *bool    `json:"recursive,omitempty" toml:"recursive"`
	Extensions []string `json:"extensions,omitempty" toml:"extensions"`
	Exclude    []string `json:"exclude,omitempty" toml:"exclude"`
	Output     string   `json:"output,omitempty" toml:"output"`
}

// Load reads the configuration file at path. The format follows the
// extension:
//
//	.yaml, .yml   YAML document
//	.toml         TOML document
//	.properties   key=value pairs, lists comma separated
//	anything else directive format of package configfile
//
// An empty path yields the default configuration.
func Load(ctx context.Context, path string) (*Config, error) {
	var config Config
	if path == "" {
		return &config, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".toml" && ext != ".properties" {
		if err := configfile.Read(ctx, path, &directives{config: &config}); err != nil {
			return nil, err
		}
		return &config, nil
	}

	name, err := walker.ExpandHome(path, nil)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	switch ext {
	case ".toml":
		err = toml.Unmarshal(data, &config)
	case ".properties":
		err = loadProperties(data, &config)
	default:
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	if err := config.Verify(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &config, nil
}

func loadProperties(data []byte, config *Config) error {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return err
	}
	for _, key := range p.Keys() {
		var args []string
		for _, v := range strings.Split(p.GetString(key, ""), ",") {
			if v = strings.TrimSpace(v); v != "" {
				args = append(args, v)
			}
		}
		if err := (&directives{config: config}).SetVariable(key, args, 0); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// Verify checks that the configuration values are usable.
func (c *Config) Verify() error {
	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}
	return nil
}

// IsRecursive returns true if subdirectories should be descended into (defaulting to true).
func (c *Config) IsRecursive() bool {
	if c.Recursive != nil {
		return *c.Recursive
	}
	return true
}

// OutputFormat returns the configured output format, text by default.
func (c *Config) OutputFormat() output.Format {
	format, err := output.ParseFormat(c.Output)
	if err != nil {
		return output.Text
	}
	return format
}

// Filter returns the predicate selecting the files to report under root.
func (c *Config) Filter(root string) walker.Filter {
	return filter.All(filter.Extensions(c.Extensions...), filter.Exclude(root, c.Exclude))
}

// directives fills a Config from a directive file.
type directives struct {
	config *Config
}

var _ configfile.Hook = &directives{}

func (d *directives) SetVariable(name string, args []string, line int) error {
	switch strings.ToLower(name) {
	case "recursive":
		if len(args) != 1 {
			return fmt.Errorf("recursive takes exactly one argument, got %d", len(args))
		}
		b, err := parseBool(args[0])
		if err != nil {
			return err
		}
		d.config.Recursive = &b

	case "ext", "extension", "extensions":
		if len(args) == 0 {
			return fmt.Errorf("%s needs at least one extension", name)
		}
		d.config.Extensions = append(d.config.Extensions, args...)

	case "exclude":
		if len(args) == 0 {
			return fmt.Errorf("exclude needs at least one pattern")
		}
		d.config.Exclude = append(d.config.Exclude, args...)

	case "output":
		if len(args) != 1 {
			return fmt.Errorf("output takes exactly one argument, got %d", len(args))
		}
		d.config.Output = args[0]

	default:
		return fmt.Errorf("%w %q", ErrUnknownDirective, name)
	}
	return nil
}

func (d *directives) Verify() error {
	return d.config.Verify()
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "on", "1":
		return true, nil
	case "no", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
