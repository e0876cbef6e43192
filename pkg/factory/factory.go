// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	libtime "github.com/bborbe/time"

	"github.com/bborbe/pom-updater/pkg/config"
	"github.com/bborbe/pom-updater/pkg/descriptor"
	"github.com/bborbe/pom-updater/pkg/git"
	"github.com/bborbe/pom-updater/pkg/lock"
	"github.com/bborbe/pom-updater/pkg/parent"
	"github.com/bborbe/pom-updater/pkg/patch"
	"github.com/bborbe/pom-updater/pkg/processor"
	"github.com/bborbe/pom-updater/pkg/runner"
)

// CreateRunner wires a Runner for the given configuration.
func CreateRunner(cfg config.Config) runner.Runner {
	return runner.NewRunner(
		cfg,
		lock.NewLocker(cfg.WorkDir),
		parent.NewLoader(cfg.ParentPom),
		processor.NewProcessor(
			cfg,
			git.NewCloner(),
			git.NewBrancher(),
			git.NewCommitter(),
			git.NewPRCreator(),
			patch.NewPlanner(),
			descriptor.NewStore(),
			libtime.NewCurrentTime(),
		),
	)
}
