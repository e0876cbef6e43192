// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bborbe/errors"
	"github.com/bborbe/run"

	"github.com/bborbe/pom-updater/pkg/config"
	"github.com/bborbe/pom-updater/pkg/lock"
	"github.com/bborbe/pom-updater/pkg/parent"
	"github.com/bborbe/pom-updater/pkg/patch"
	"github.com/bborbe/pom-updater/pkg/processor"
	"github.com/bborbe/pom-updater/pkg/repo"
)

// Runner orchestrates one batch run.
type Runner interface {
	Run(ctx context.Context) error
}

// runner orchestrates one batch run.
type runner struct {
	cfg          config.Config
	locker       lock.Locker
	parentLoader parent.Loader
	processor    processor.Processor
}

// NewRunner creates a new Runner.
func NewRunner(
	cfg config.Config,
	locker lock.Locker,
	parentLoader parent.Loader,
	processor processor.Processor,
) Runner {
	return &runner{
		cfg:          cfg,
		locker:       locker,
		parentLoader: parentLoader,
		processor:    processor,
	}
}

// Run executes one batch run:
// 1. Create the work directory and acquire the instance lock inside it
// 2. Read the repository list
// 3. Resolve tag values that have no configured target from the parent descriptor
// 4. Process every repository sequentially
func (r *runner) Run(ctx context.Context) error {
	// The lock file lives in the work directory, so create it first
	if err := os.MkdirAll(r.cfg.WorkDir, 0750); err != nil {
		return errors.Wrapf(ctx, err, "create work directory %s", r.cfg.WorkDir)
	}

	// Acquire instance lock
	if err := r.locker.Acquire(ctx); err != nil {
		return errors.Wrap(ctx, err, "acquire lock")
	}
	defer func() {
		if err := r.locker.Release(context.WithoutCancel(ctx)); err != nil {
			log.Printf("pom-updater: failed to release lock: %v", err)
		}
	}()

	// Set up signal handling
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var repositories []repo.Repository
	var updates []patch.FieldUpdate
	return run.Sequential(
		ctx,
		func(ctx context.Context) error {
			result, err := repo.Load(ctx, r.cfg.ReposFile)
			if err != nil {
				return errors.Wrap(ctx, err, "load repository list")
			}
			repositories = result
			log.Printf("pom-updater: loaded %d repositories from %s", len(repositories), r.cfg.ReposFile)
			return nil
		},
		func(ctx context.Context) error {
			result, err := r.resolveUpdates(ctx)
			if err != nil {
				return errors.Wrap(ctx, err, "resolve tag updates")
			}
			updates = result
			return nil
		},
		func(ctx context.Context) error {
			return r.processor.Process(ctx, repositories, updates)
		},
	)
}

// resolveUpdates builds the field update list from the configured
// tags. The parent descriptor is consulted at most once, and only
// when some tag has no configured target value. Resolution happens
// before any repository is touched so a missing parent field fails
// the whole run up front.
func (r *runner) resolveUpdates(ctx context.Context) ([]patch.FieldUpdate, error) {
	updates := make([]patch.FieldUpdate, 0, len(r.cfg.Tags))
	for _, tag := range r.cfg.Tags {
		updates = append(updates, patch.FieldUpdate{
			Name:  tag.Name,
			Value: tag.Value,
		})
	}
	if !patch.NeedsResolution(updates) {
		return updates, nil
	}

	parentDescriptor, err := r.parentLoader.Load(ctx)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "load parent descriptor %s", r.cfg.ParentPom)
	}
	resolved, err := patch.ResolveMissing(ctx, updates, parentDescriptor)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "resolve missing tag values")
	}
	return resolved, nil
}
