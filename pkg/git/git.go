// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/bborbe/errors"
)

// runGit runs a git command in the given repository directory and
// returns stderr in the error on failure.
func runGit(ctx context.Context, dir string, args ...string) error {
	// #nosec G204 -- arguments are assembled by the application, not user input
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(ctx, err, "run git %s: %s", args[0], stderr.String())
	}
	return nil
}

// Committer stages and commits changes in a repository.
//
//counterfeiter:generate -o ../../mocks/committer.go --fake-name Committer . Committer
type Committer interface {
	Commit(ctx context.Context, dir string, message string) error
}

// committer implements Committer.
type committer struct{}

// NewCommitter creates a new Committer.
func NewCommitter() Committer {
	return &committer{}
}

// Commit stages all changes and commits them with the given message.
func (c *committer) Commit(ctx context.Context, dir string, message string) error {
	if err := runGit(ctx, dir, "add", "-A"); err != nil {
		return errors.Wrap(ctx, err, "git add")
	}
	if err := runGit(ctx, dir, "commit", "-m", message); err != nil {
		return errors.Wrap(ctx, err, "git commit")
	}
	return nil
}
