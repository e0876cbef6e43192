// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// TagUpdate is one configured field update. An empty value means the
// value is resolved from the parent descriptor before the run starts.
type TagUpdate struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

// Config holds the pom-updater configuration.
type Config struct {
	ReposFile           string      `yaml:"reposFile"`
	ParentPom           string      `yaml:"parentPom"`
	WorkDir             string      `yaml:"workDir"`
	DescriptorFile      string      `yaml:"descriptorFile"`
	BranchPrefix        string      `yaml:"branchPrefix"`
	Workflow            Workflow    `yaml:"workflow"`
	Tags                []TagUpdate `yaml:"tags"`
	BumpVersion         bool        `yaml:"bumpVersion"`
	StrictMissing       bool        `yaml:"strictMissing"`
	DryRun              bool        `yaml:"dryRun"`
	SharedRevisionRepos []string    `yaml:"sharedRevisionRepos"`
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	return Config{
		ReposFile:      "repos.txt",
		ParentPom:      "pom.xml",
		WorkDir:        "workdir",
		DescriptorFile: "pom.xml",
		BranchPrefix:   "upgrade-tags",
		Workflow:       WorkflowDirect,
	}
}

// UsesSharedRevision reports whether the named repository uses the
// single shared revision field layout instead of the
// artifactId-anchored version field.
func (c Config) UsesSharedRevision(repoName string) bool {
	return collection.Contains(c.SharedRevisionRepos, repoName)
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("workflow", c.Workflow),
		validation.Name("reposFile", validation.NotEmptyString(c.ReposFile)),
		validation.Name("workDir", validation.NotEmptyString(c.WorkDir)),
		validation.Name("descriptorFile", validation.NotEmptyString(c.DescriptorFile)),
		validation.Name("branchPrefix", validation.NotEmptyString(c.BranchPrefix)),
		validation.Name("tags", validation.HasValidationFunc(func(ctx context.Context) error {
			for _, tag := range c.Tags {
				if tag.Name == "" {
					return errors.Errorf(ctx, "tag with empty name")
				}
			}
			return nil
		})),
	}.Validate(ctx)
}
