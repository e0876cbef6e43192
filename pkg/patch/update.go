// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patch

import (
	"fmt"
	"strings"

	"github.com/bborbe/pom-updater/pkg/descriptor"
	"github.com/bborbe/pom-updater/pkg/version"
)

// FieldUpdate requests setting a named descriptor field to a value.
// An empty Value means the value must be resolved from the parent
// descriptor before patching.
type FieldUpdate struct {
	Name  string
	Value string
}

// AppliedUpdate records one performed field update for the commit
// message.
type AppliedUpdate struct {
	Name     string
	OldValue string
	NewValue string
}

// VersionBump records a performed primary-version bump.
type VersionBump struct {
	Old version.Version
	New version.Version
}

// Outcome is the result of applying a patch plan to one descriptor.
type Outcome struct {
	AppliedUpdates   []AppliedUpdate
	VersionBump      *VersionBump
	Descriptor       descriptor.Descriptor
	UnresolvedFields []string
}

// HasChanges reports whether the descriptor was mutated. Callers must
// treat a change-free outcome as a no-op for that repository: no
// commit.
func (o *Outcome) HasChanges() bool {
	return len(o.AppliedUpdates) > 0 || o.VersionBump != nil
}

// CommitMessage renders the applied changes as
// "Upgrade: <name>=<value>; ... patch=<newVersion>;".
func (o *Outcome) CommitMessage() string {
	var b strings.Builder
	b.WriteString("Upgrade:")
	for _, update := range o.AppliedUpdates {
		fmt.Fprintf(&b, " %s=%s;", update.Name, update.NewValue)
	}
	if o.VersionBump != nil {
		fmt.Fprintf(&b, " patch=%s;", o.VersionBump.New.String())
	}
	return b.String()
}
