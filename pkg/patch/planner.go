// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patch

import (
	"context"
	stderrors "errors"
	"log"

	"github.com/bborbe/errors"

	"github.com/bborbe/pom-updater/pkg/descriptor"
	"github.com/bborbe/pom-updater/pkg/version"
)

// ErrFieldAbsent is returned when a requested field is missing from
// the target descriptor and strict mode is enabled. The whole plan
// fails and the repository is aborted without a partial commit.
var ErrFieldAbsent = stderrors.New("field absent in descriptor")

const (
	// ArtifactIDField anchors the primary version field in the
	// descriptor's fixed layout: artifact identifier followed by
	// version.
	ArtifactIDField = "artifactId"
	// VersionField is the primary version field name.
	VersionField = "version"
	// RevisionField is the single shared revision field used by
	// repositories with the shared-revision layout.
	RevisionField = "revision"
)

// Options controls how a plan is applied to one descriptor.
type Options struct {
	// BumpVersion applies a patch bump to the primary version field
	// after all tag updates.
	BumpVersion bool
	// StrictMissing makes a missing field during update fatal instead
	// of skip-and-warn.
	StrictMissing bool
	// SharedRevision selects the shared "revision" field for the bump
	// instead of the artifactId-anchored "version" field.
	SharedRevision bool
}

// Planner applies a sequence of field updates plus an optional
// version bump to one descriptor buffer.
//
//counterfeiter:generate -o ../../mocks/planner.go --fake-name Planner . Planner
type Planner interface {
	Apply(
		ctx context.Context,
		d descriptor.Descriptor,
		updates []FieldUpdate,
		opts Options,
	) (*Outcome, error)
}

// planner implements Planner.
type planner struct{}

// NewPlanner creates a new Planner.
func NewPlanner() Planner {
	return &planner{}
}

// Apply performs the tag updates in order, then the optional version
// bump, and returns the mutated descriptor with the list of applied
// changes. Updates are applied in request order; a field is never
// invented when missing.
func (p *planner) Apply(
	ctx context.Context,
	d descriptor.Descriptor,
	updates []FieldUpdate,
	opts Options,
) (*Outcome, error) {
	outcome := &Outcome{
		Descriptor: d,
	}

	for _, update := range updates {
		field, found := descriptor.FindFirst(outcome.Descriptor, update.Name)
		if !found {
			if opts.StrictMissing {
				return nil, errors.Wrapf(ctx, ErrFieldAbsent, "field %s", update.Name)
			}
			log.Printf("pom-updater: field %s not found, skipping", update.Name)
			outcome.UnresolvedFields = append(outcome.UnresolvedFields, update.Name)
			continue
		}
		if field.Value == update.Value {
			continue
		}
		outcome.Descriptor = descriptor.ReplaceAll(outcome.Descriptor, update.Name, update.Value)
		outcome.AppliedUpdates = append(outcome.AppliedUpdates, AppliedUpdate{
			Name:     update.Name,
			OldValue: field.Value,
			NewValue: update.Value,
		})
	}

	if opts.BumpVersion {
		p.bumpVersion(ctx, outcome, opts)
	}

	return outcome, nil
}

// bumpVersion locates the primary version field, parses it, and
// bumps the patch component. Locate and parse failures skip the bump
// with a warning: the run continues, this repository just gets no
// bump.
func (p *planner) bumpVersion(ctx context.Context, outcome *Outcome, opts Options) {
	fieldName := VersionField
	var field descriptor.Field
	var found bool
	if opts.SharedRevision {
		fieldName = RevisionField
		field, found = descriptor.FindFirst(outcome.Descriptor, fieldName)
	} else {
		field, found = descriptor.FindFirstAfter(outcome.Descriptor, ArtifactIDField, fieldName)
	}
	if !found {
		log.Printf("pom-updater: primary version field %s not found, skipping bump", fieldName)
		return
	}

	current, err := version.ParseVersion(ctx, field.Value)
	if err != nil {
		log.Printf("pom-updater: cannot bump '%s': %v", field.Value, err)
		return
	}

	next := current.BumpPatch()
	outcome.Descriptor = descriptor.ReplaceAtLine(
		outcome.Descriptor,
		field.LineIndex,
		fieldName,
		next.String(),
	)
	outcome.VersionBump = &VersionBump{
		Old: current,
		New: next,
	}
}
