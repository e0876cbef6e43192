// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patch

import (
	"context"
	stderrors "errors"

	"github.com/bborbe/errors"

	"github.com/bborbe/pom-updater/pkg/descriptor"
)

// ErrMissingInParent is returned when a requested field is absent from
// the parent descriptor. It is fatal for the whole run: no repository
// can be correctly patched without a resolved value, so resolution
// happens before any repository is touched.
var ErrMissingInParent = stderrors.New("field missing in parent descriptor")

// ResolveMissing fills every update without a target value by looking
// the field up in the parent descriptor. Updates that already carry a
// value pass through unchanged. Runs once per invocation batch.
func ResolveMissing(
	ctx context.Context,
	updates []FieldUpdate,
	parent descriptor.Descriptor,
) ([]FieldUpdate, error) {
	result := make([]FieldUpdate, len(updates))
	copy(result, updates)

	for i, update := range result {
		if update.Value != "" {
			continue
		}
		field, found := descriptor.FindFirst(parent, update.Name)
		if !found {
			return nil, errors.Wrapf(ctx, ErrMissingInParent, "field %s", update.Name)
		}
		result[i].Value = field.Value
	}

	return result, nil
}

// NeedsResolution reports whether any update still lacks a target
// value. The parent descriptor is only loaded when this is true.
func NeedsResolution(updates []FieldUpdate) bool {
	for _, update := range updates {
		if update.Value == "" {
			return true
		}
	}
	return false
}
