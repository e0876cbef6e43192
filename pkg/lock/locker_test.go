// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lock_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pom-updater/pkg/lock"
)

var _ = Describe("Locker", func() {
	var (
		ctx     context.Context
		tempDir string
		locker  lock.Locker
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		tempDir, err = os.MkdirTemp("", "lock-test-*")
		Expect(err).NotTo(HaveOccurred())
		locker = lock.NewLocker(tempDir)
	})

	AfterEach(func() {
		_ = locker.Release(ctx)
		_ = os.RemoveAll(tempDir)
	})

	Describe("Acquire", func() {
		It("succeeds on first call", func() {
			Expect(locker.Acquire(ctx)).To(Succeed())
		})

		It("writes the PID to the lock file", func() {
			Expect(locker.Acquire(ctx)).To(Succeed())

			data, err := os.ReadFile(filepath.Join(tempDir, ".pom-updater.lock"))
			Expect(err).NotTo(HaveOccurred())
			pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
			Expect(err).NotTo(HaveOccurred())
			Expect(pid).To(Equal(os.Getpid()))
		})

		It("fails for a second locker on the same directory", func() {
			Expect(locker.Acquire(ctx)).To(Succeed())

			other := lock.NewLocker(tempDir)
			err := other.Acquire(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("lock"))
		})
	})

	Describe("Release", func() {
		It("removes the lock file", func() {
			Expect(locker.Acquire(ctx)).To(Succeed())
			Expect(locker.Release(ctx)).To(Succeed())

			_, err := os.Stat(filepath.Join(tempDir, ".pom-updater.lock"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("allows re-acquiring after release", func() {
			Expect(locker.Acquire(ctx)).To(Succeed())
			Expect(locker.Release(ctx)).To(Succeed())

			other := lock.NewLocker(tempDir)
			Expect(other.Acquire(ctx)).To(Succeed())
			Expect(other.Release(ctx)).To(Succeed())
		})

		It("is a no-op without a held lock", func() {
			Expect(locker.Release(ctx)).To(Succeed())
		})
	})
})
