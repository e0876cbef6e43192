// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package processor

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/bborbe/errors"
	libtime "github.com/bborbe/time"

	"github.com/bborbe/pom-updater/pkg/config"
	"github.com/bborbe/pom-updater/pkg/descriptor"
	"github.com/bborbe/pom-updater/pkg/git"
	"github.com/bborbe/pom-updater/pkg/patch"
	"github.com/bborbe/pom-updater/pkg/repo"
)

// Processor processes the repository list sequentially.
//
//counterfeiter:generate -o ../../mocks/processor.go --fake-name Processor . Processor
type Processor interface {
	Process(
		ctx context.Context,
		repositories []repo.Repository,
		updates []patch.FieldUpdate,
	) error
}

// processor implements Processor.
type processor struct {
	cfg         config.Config
	cloner      git.Cloner
	brancher    git.Brancher
	committer   git.Committer
	prCreator   git.PRCreator
	planner     patch.Planner
	store       descriptor.Store
	currentTime libtime.CurrentTime
}

// NewProcessor creates a new Processor.
func NewProcessor(
	cfg config.Config,
	cloner git.Cloner,
	brancher git.Brancher,
	committer git.Committer,
	prCreator git.PRCreator,
	planner patch.Planner,
	store descriptor.Store,
	currentTime libtime.CurrentTime,
) Processor {
	return &processor{
		cfg:         cfg,
		cloner:      cloner,
		brancher:    brancher,
		committer:   committer,
		prCreator:   prCreator,
		planner:     planner,
		store:       store,
		currentTime: currentTime,
	}
}

// Process handles each repository as an independent, ordered unit of
// work. A failure in one repository is logged and recorded but never
// prevents the remaining repositories from being processed; the run
// fails at the end if any repository failed.
func (p *processor) Process(
	ctx context.Context,
	repositories []repo.Repository,
	updates []patch.FieldUpdate,
) error {
	branch := fmt.Sprintf(
		"%s-%s",
		p.cfg.BranchPrefix,
		p.currentTime.Now().Format("20060102-150405"),
	)

	var failed []string
	for _, repository := range repositories {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(ctx, err, "processing canceled")
		}

		log.Printf("pom-updater: processing %s", repository.Name)
		if err := p.processRepository(ctx, repository, updates, branch); err != nil {
			log.Printf("pom-updater: %s failed: %v", repository.Name, err)
			failed = append(failed, repository.Name)
			continue
		}
	}

	if len(failed) > 0 {
		return errors.Errorf(
			ctx,
			"%d of %d repositories failed: %s",
			len(failed),
			len(repositories),
			strings.Join(failed, ", "),
		)
	}
	return nil
}

// processRepository clones, patches, and publishes one repository.
func (p *processor) processRepository(
	ctx context.Context,
	repository repo.Repository,
	updates []patch.FieldUpdate,
	branch string,
) error {
	dir := filepath.Join(p.cfg.WorkDir, repository.Name)

	if err := p.cloner.Clone(ctx, repository.URL, dir); err != nil {
		return errors.Wrap(ctx, err, "clone repository")
	}

	baseBranch, err := p.brancher.CurrentBranch(ctx, dir)
	if err != nil {
		return errors.Wrap(ctx, err, "determine base branch")
	}

	if err := p.brancher.CreateAndSwitch(ctx, dir, branch); err != nil {
		return errors.Wrap(ctx, err, "create branch")
	}
	log.Printf("pom-updater: %s created %s from %s", repository.Name, branch, baseBranch)

	descriptorPath := filepath.Join(dir, p.cfg.DescriptorFile)
	d, err := p.store.Load(ctx, descriptorPath)
	if err != nil {
		return errors.Wrap(ctx, err, "load descriptor")
	}

	outcome, err := p.planner.Apply(ctx, d, updates, patch.Options{
		BumpVersion:    p.cfg.BumpVersion,
		StrictMissing:  p.cfg.StrictMissing,
		SharedRevision: p.cfg.UsesSharedRevision(repository.Name),
	})
	if err != nil {
		return errors.Wrap(ctx, err, "apply patch plan")
	}

	if !outcome.HasChanges() {
		log.Printf("pom-updater: %s already up to date", repository.Name)
		return nil
	}

	message := outcome.CommitMessage()

	if p.cfg.DryRun {
		log.Printf("pom-updater: dry-run: %s would get commit %q", repository.Name, message)
		return nil
	}

	if err := p.store.Save(ctx, descriptorPath, outcome.Descriptor); err != nil {
		return errors.Wrap(ctx, err, "save descriptor")
	}

	if err := p.committer.Commit(ctx, dir, message); err != nil {
		return errors.Wrap(ctx, err, "commit")
	}

	if err := p.brancher.Push(ctx, dir, branch); err != nil {
		return errors.Wrap(ctx, err, "push branch")
	}

	log.Printf("pom-updater: %s pushed %s", repository.Name, branch)

	if p.cfg.Workflow == config.WorkflowPR {
		url, err := p.prCreator.Create(ctx, dir, message, prBody(outcome))
		if err != nil {
			return errors.Wrap(ctx, err, "create pull request")
		}
		log.Printf("pom-updater: %s opened %s", repository.Name, url)
	}

	return nil
}

// prBody renders the applied changes for the pull request description.
func prBody(outcome *patch.Outcome) string {
	var b strings.Builder
	b.WriteString("Automated descriptor update.\n")
	for _, update := range outcome.AppliedUpdates {
		fmt.Fprintf(&b, "\n- %s: %s -> %s", update.Name, update.OldValue, update.NewValue)
	}
	if outcome.VersionBump != nil {
		fmt.Fprintf(
			&b,
			"\n- version: %s -> %s",
			outcome.VersionBump.Old.String(),
			outcome.VersionBump.New.String(),
		)
	}
	return b.String()
}
