// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patch_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pom-updater/pkg/descriptor"
	"github.com/bborbe/pom-updater/pkg/patch"
)

var _ = Describe("Planner", func() {
	var (
		ctx     context.Context
		planner patch.Planner
	)

	BeforeEach(func() {
		ctx = context.Background()
		planner = patch.NewPlanner()
	})

	Describe("tag updates", func() {
		It("applies updates in request order", func() {
			d := descriptor.Descriptor{
				"<spring.version>5.0.0</spring.version>",
				"<jackson.version>2.14.0</jackson.version>",
			}
			outcome, err := planner.Apply(ctx, d, []patch.FieldUpdate{
				{Name: "spring.version", Value: "5.3.0"},
				{Name: "jackson.version", Value: "2.15.0"},
			}, patch.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.AppliedUpdates).To(Equal([]patch.AppliedUpdate{
				{Name: "spring.version", OldValue: "5.0.0", NewValue: "5.3.0"},
				{Name: "jackson.version", OldValue: "2.14.0", NewValue: "2.15.0"},
			}))
			Expect(outcome.Descriptor).To(Equal(descriptor.Descriptor{
				"<spring.version>5.3.0</spring.version>",
				"<jackson.version>2.15.0</jackson.version>",
			}))
		})

		It("updates every occurrence of a repeated field", func() {
			d := descriptor.Descriptor{
				"<spring.version>5.0.0</spring.version>",
				"<spring.version>5.0.0</spring.version>",
			}
			outcome, err := planner.Apply(ctx, d, []patch.FieldUpdate{
				{Name: "spring.version", Value: "5.3.0"},
			}, patch.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Descriptor[0]).To(Equal("<spring.version>5.3.0</spring.version>"))
			Expect(outcome.Descriptor[1]).To(Equal("<spring.version>5.3.0</spring.version>"))
		})

		It("skips updates whose value is already current", func() {
			d := descriptor.Descriptor{
				"<spring.version>5.3.0</spring.version>",
			}
			outcome, err := planner.Apply(ctx, d, []patch.FieldUpdate{
				{Name: "spring.version", Value: "5.3.0"},
			}, patch.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.AppliedUpdates).To(BeEmpty())
			Expect(outcome.HasChanges()).To(BeFalse())
			Expect(outcome.Descriptor).To(Equal(d))
		})

		It("records missing fields without mutating when not strict", func() {
			d := descriptor.Descriptor{
				"<project>",
				"</project>",
			}
			outcome, err := planner.Apply(ctx, d, []patch.FieldUpdate{
				{Name: "foo", Value: "2.0"},
			}, patch.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.UnresolvedFields).To(Equal([]string{"foo"}))
			Expect(outcome.Descriptor).To(Equal(d))
			Expect(outcome.HasChanges()).To(BeFalse())
		})

		It("fails with ErrFieldAbsent when strict and a field is missing", func() {
			d := descriptor.Descriptor{
				"<project>",
				"</project>",
			}
			outcome, err := planner.Apply(ctx, d, []patch.FieldUpdate{
				{Name: "foo", Value: "2.0"},
			}, patch.Options{StrictMissing: true})
			Expect(err).To(HaveOccurred())
			Expect(stderrors.Is(err, patch.ErrFieldAbsent)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("foo"))
			Expect(outcome).To(BeNil())
		})

		It("continues with later updates after a non-strict miss", func() {
			d := descriptor.Descriptor{
				"<jackson.version>2.14.0</jackson.version>",
			}
			outcome, err := planner.Apply(ctx, d, []patch.FieldUpdate{
				{Name: "foo", Value: "2.0"},
				{Name: "jackson.version", Value: "2.15.0"},
			}, patch.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.UnresolvedFields).To(Equal([]string{"foo"}))
			Expect(outcome.AppliedUpdates).To(HaveLen(1))
		})
	})

	Describe("version bump", func() {
		It("bumps the artifactId-anchored version field", func() {
			d := descriptor.Descriptor{
				"<artifactId>x</artifactId>",
				"<version>1.0.4-SNAPSHOT</version>",
			}
			outcome, err := planner.Apply(ctx, d, nil, patch.Options{BumpVersion: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Descriptor).To(Equal(descriptor.Descriptor{
				"<artifactId>x</artifactId>",
				"<version>1.0.5-SNAPSHOT</version>",
			}))
			Expect(outcome.VersionBump).NotTo(BeNil())
			Expect(outcome.VersionBump.Old.String()).To(Equal("1.0.4-SNAPSHOT"))
			Expect(outcome.VersionBump.New.String()).To(Equal("1.0.5-SNAPSHOT"))
		})

		It("skips dependency version fields before the anchor", func() {
			d := descriptor.Descriptor{
				"<parent>",
				"  <version>2.0.0</version>",
				"</parent>",
				"<artifactId>x</artifactId>",
				"<version>1.0.4-SNAPSHOT</version>",
			}
			outcome, err := planner.Apply(ctx, d, nil, patch.Options{BumpVersion: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Descriptor[1]).To(Equal("  <version>2.0.0</version>"))
			Expect(outcome.Descriptor[4]).To(Equal("<version>1.0.5-SNAPSHOT</version>"))
		})

		It("touches exactly one line even when the field recurs later", func() {
			d := descriptor.Descriptor{
				"<artifactId>x</artifactId>",
				"<version>1.0.4</version>",
				"<version>1.0.4</version>",
			}
			outcome, err := planner.Apply(ctx, d, nil, patch.Options{BumpVersion: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Descriptor[1]).To(Equal("<version>1.0.5-SNAPSHOT</version>"))
			Expect(outcome.Descriptor[2]).To(Equal("<version>1.0.4</version>"))
		})

		It("uses the revision field for shared-revision repositories", func() {
			d := descriptor.Descriptor{
				"<artifactId>x</artifactId>",
				"<version>should-stay</version>",
				"<revision>3.2.1</revision>",
			}
			outcome, err := planner.Apply(ctx, d, nil, patch.Options{
				BumpVersion:    true,
				SharedRevision: true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Descriptor[1]).To(Equal("<version>should-stay</version>"))
			Expect(outcome.Descriptor[2]).To(Equal("<revision>3.2.2-SNAPSHOT</revision>"))
		})

		It("skips the bump when the version does not parse", func() {
			d := descriptor.Descriptor{
				"<artifactId>x</artifactId>",
				"<version>${revision}</version>",
			}
			outcome, err := planner.Apply(ctx, d, nil, patch.Options{BumpVersion: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.VersionBump).To(BeNil())
			Expect(outcome.Descriptor).To(Equal(d))
		})

		It("skips the bump when no version field is present", func() {
			d := descriptor.Descriptor{
				"<artifactId>x</artifactId>",
			}
			outcome, err := planner.Apply(ctx, d, nil, patch.Options{BumpVersion: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.VersionBump).To(BeNil())
		})

		It("applies tag updates before the bump", func() {
			d := descriptor.Descriptor{
				"<spring.version>5.0.0</spring.version>",
				"<artifactId>x</artifactId>",
				"<version>1.0.4-SNAPSHOT</version>",
			}
			outcome, err := planner.Apply(ctx, d, []patch.FieldUpdate{
				{Name: "spring.version", Value: "5.3.0"},
			}, patch.Options{BumpVersion: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.AppliedUpdates).To(HaveLen(1))
			Expect(outcome.VersionBump).NotTo(BeNil())
			Expect(outcome.Descriptor).To(Equal(descriptor.Descriptor{
				"<spring.version>5.3.0</spring.version>",
				"<artifactId>x</artifactId>",
				"<version>1.0.5-SNAPSHOT</version>",
			}))
		})
	})
})
