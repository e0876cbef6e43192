// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"

	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"
)

// Loader loads configuration from a file.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name ConfigLoader . Loader
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// fileLoader implements Loader by reading from a file.
type fileLoader struct {
	configPath string
}

// NewLoader creates a Loader that reads from the given path.
func NewLoader(configPath string) Loader {
	return &fileLoader{
		configPath: configPath,
	}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	ReposFile           *string      `yaml:"reposFile"`
	ParentPom           *string      `yaml:"parentPom"`
	WorkDir             *string      `yaml:"workDir"`
	DescriptorFile      *string      `yaml:"descriptorFile"`
	BranchPrefix        *string      `yaml:"branchPrefix"`
	Workflow            *Workflow    `yaml:"workflow"`
	Tags                *[]TagUpdate `yaml:"tags"`
	BumpVersion         *bool        `yaml:"bumpVersion"`
	StrictMissing       *bool        `yaml:"strictMissing"`
	DryRun              *bool        `yaml:"dryRun"`
	SharedRevisionRepos *[]string    `yaml:"sharedRevisionRepos"`
}

// Load reads the config file, merges with defaults, validates, and
// returns the config.
func (l *fileLoader) Load(ctx context.Context) (Config, error) {
	cfg := Defaults()

	// #nosec G304 -- configPath comes from the command line flag
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist - return defaults
			return cfg, nil
		}
		return Config{}, errors.Wrap(ctx, err, "read config file")
	}

	// Parse YAML into partial config to preserve defaults for missing fields
	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return Config{}, errors.Wrap(ctx, err, "parse config file")
	}

	// Merge non-nil values onto defaults
	if partial.ReposFile != nil {
		cfg.ReposFile = *partial.ReposFile
	}
	if partial.ParentPom != nil {
		cfg.ParentPom = *partial.ParentPom
	}
	if partial.WorkDir != nil {
		cfg.WorkDir = *partial.WorkDir
	}
	if partial.DescriptorFile != nil {
		cfg.DescriptorFile = *partial.DescriptorFile
	}
	if partial.BranchPrefix != nil {
		cfg.BranchPrefix = *partial.BranchPrefix
	}
	if partial.Workflow != nil {
		cfg.Workflow = *partial.Workflow
	}
	if partial.Tags != nil {
		cfg.Tags = *partial.Tags
	}
	if partial.BumpVersion != nil {
		cfg.BumpVersion = *partial.BumpVersion
	}
	if partial.StrictMissing != nil {
		cfg.StrictMissing = *partial.StrictMissing
	}
	if partial.DryRun != nil {
		cfg.DryRun = *partial.DryRun
	}
	if partial.SharedRevisionRepos != nil {
		cfg.SharedRevisionRepos = *partial.SharedRevisionRepos
	}

	// Validate merged config
	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}

	return cfg, nil
}
