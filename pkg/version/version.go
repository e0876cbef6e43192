// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/bborbe/errors"
)

// ErrNotAVersion is returned when a string does not have the
// MAJOR.MINOR.PATCH[-SUFFIX] shape. Callers match it with errors.Is
// and skip the version bump instead of failing the run.
var ErrNotAVersion = stderrors.New("not a version")

// SnapshotSuffix is the suffix attached to every bumped version.
const SnapshotSuffix = "SNAPSHOT"

// Match M.m.p with an optional suffix after the first dash.
var versionRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-(.+))?$`)

// Version represents a MAJOR.MINOR.PATCH[-SUFFIX] build version.
type Version struct {
	Major  int
	Minor  int
	Patch  int
	Suffix string
}

// ParseVersion parses "M.m.p" or "M.m.p-SUFFIX" into a Version.
// Any other shape (two components, non-numeric component, four
// components) returns ErrNotAVersion, as does a numeric component
// too large for int.
func ParseVersion(ctx context.Context, text string) (Version, error) {
	matches := versionRe.FindStringSubmatch(text)
	if matches == nil {
		return Version{}, errors.Wrapf(ctx, ErrNotAVersion, "parse '%s'", text)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, errors.Wrapf(ctx, ErrNotAVersion, "parse '%s'", text)
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return Version{}, errors.Wrapf(ctx, ErrNotAVersion, "parse '%s'", text)
	}
	patch, err := strconv.Atoi(matches[3])
	if err != nil {
		return Version{}, errors.Wrapf(ctx, ErrNotAVersion, "parse '%s'", text)
	}

	return Version{
		Major:  major,
		Minor:  minor,
		Patch:  patch,
		Suffix: matches[4],
	}, nil
}

// String returns "M.m.p" plus "-SUFFIX" if a suffix is present.
// Parsing and formatting round-trip exactly.
func (v Version) String() string {
	if v.Suffix != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Suffix)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// BumpPatch returns a new version with patch incremented by one and
// the suffix forced to SNAPSHOT, whatever it was before.
func (v Version) BumpPatch() Version {
	return Version{
		Major:  v.Major,
		Minor:  v.Minor,
		Patch:  v.Patch + 1,
		Suffix: SnapshotSuffix,
	}
}
