// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bborbe/errors"
)

const lockFileName = ".pom-updater.lock"

//counterfeiter:generate -o ../../mocks/locker.go --fake-name Locker . Locker

// Locker prevents concurrent pom-updater runs against the same
// working directory.
type Locker interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
}

// locker implements file-based locking using flock.
type locker struct {
	lockPath string
	fd       *os.File
}

// NewLocker creates a Locker for the specified directory.
func NewLocker(dir string) Locker {
	return &locker{
		lockPath: filepath.Join(dir, lockFileName),
	}
}

// Acquire takes an exclusive lock on the lock file and records the
// PID for diagnostics. Returns an error if another run holds the
// lock.
func (l *locker) Acquire(ctx context.Context) error {
	fd, err := os.OpenFile(l.lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return errors.Wrap(ctx, err, "open lock file")
	}

	if err := syscall.Flock( //nolint:gosec // G115: File descriptor conversion is safe
		int(fd.Fd()),
		syscall.LOCK_EX|syscall.LOCK_NB,
	); err != nil {
		_ = fd.Close()
		if pid, readErr := l.readPID(); readErr == nil {
			return errors.Errorf(ctx, "another pom-updater run holds the lock (pid %s)", pid)
		}
		return errors.Wrap(ctx, err, "acquire lock")
	}

	if err := fd.Truncate(0); err != nil {
		_ = fd.Close()
		return errors.Wrap(ctx, err, "truncate lock file")
	}
	if _, err := fmt.Fprintf(fd, "%d\n", os.Getpid()); err != nil {
		_ = fd.Close()
		return errors.Wrap(ctx, err, "write pid")
	}

	l.fd = fd
	return nil
}

// Release drops the lock and removes the lock file.
func (l *locker) Release(ctx context.Context) error {
	if l.fd == nil {
		return nil
	}

	if err := syscall.Flock( //nolint:gosec // G115: File descriptor conversion is safe
		int(l.fd.Fd()),
		syscall.LOCK_UN,
	); err != nil {
		return errors.Wrap(ctx, err, "unlock")
	}
	if err := l.fd.Close(); err != nil {
		return errors.Wrap(ctx, err, "close lock file")
	}
	l.fd = nil

	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(ctx, err, "remove lock file")
	}
	return nil
}

// readPID reads the PID recorded by the lock holder.
func (l *locker) readPID() (string, error) {
	data, err := os.ReadFile(l.lockPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
