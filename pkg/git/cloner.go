// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	"os"

	"github.com/bborbe/errors"
)

// Cloner clones repositories into the working directory.
//
//counterfeiter:generate -o ../../mocks/cloner.go --fake-name Cloner . Cloner
type Cloner interface {
	Clone(ctx context.Context, url string, dir string) error
}

// cloner implements Cloner.
type cloner struct{}

// NewCloner creates a new Cloner.
func NewCloner() Cloner {
	return &cloner{}
}

// Clone clones url into dir. A leftover directory from a previous run
// is removed first: the working directory is tool-owned scratch space.
func (c *cloner) Clone(ctx context.Context, url string, dir string) error {
	if _, err := os.Stat(dir); err == nil {
		if err := os.RemoveAll(dir); err != nil {
			return errors.Wrapf(ctx, err, "remove stale clone %s", dir)
		}
	}
	if err := runGit(ctx, ".", "clone", url, dir); err != nil {
		return errors.Wrapf(ctx, err, "clone %s", url)
	}
	return nil
}
