// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bborbe/errors"
)

// Brancher handles git branch operations in a repository directory.
//
//counterfeiter:generate -o ../../mocks/brancher.go --fake-name Brancher . Brancher
type Brancher interface {
	CreateAndSwitch(ctx context.Context, dir string, name string) error
	Push(ctx context.Context, dir string, name string) error
	CurrentBranch(ctx context.Context, dir string) (string, error)
}

// brancher implements Brancher.
type brancher struct{}

// NewBrancher creates a new Brancher.
func NewBrancher() Brancher {
	return &brancher{}
}

// CreateAndSwitch creates a new branch and switches to it.
func (b *brancher) CreateAndSwitch(ctx context.Context, dir string, name string) error {
	if err := runGit(ctx, dir, "checkout", "-b", name); err != nil {
		return errors.Wrap(ctx, err, "create and switch to branch")
	}
	return nil
}

// Push pushes a branch to the remote repository.
func (b *brancher) Push(ctx context.Context, dir string, name string) error {
	if err := runGit(ctx, dir, "push", "-u", "origin", name); err != nil {
		return errors.Wrap(ctx, err, "push branch to remote")
	}
	return nil
}

// CurrentBranch returns the name of the current branch.
func (b *brancher) CurrentBranch(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(ctx, err, "get current branch")
	}
	return strings.TrimSpace(string(output)), nil
}
