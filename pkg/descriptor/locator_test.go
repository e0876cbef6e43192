// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pom-updater/pkg/descriptor"
)

var _ = Describe("Locator", func() {
	Describe("FindFirst", func() {
		It("finds a single-line field and extracts its value", func() {
			d := descriptor.Descriptor{
				"<project>",
				"  <artifactId>my-service</artifactId>",
				"  <version>1.0.4-SNAPSHOT</version>",
				"</project>",
			}
			field, found := descriptor.FindFirst(d, "version")
			Expect(found).To(BeTrue())
			Expect(field.LineIndex).To(Equal(2))
			Expect(field.Value).To(Equal("1.0.4-SNAPSHOT"))
		})

		It("returns the first of multiple occurrences", func() {
			d := descriptor.Descriptor{
				"<version>1.0.0</version>",
				"<version>2.0.0</version>",
			}
			field, found := descriptor.FindFirst(d, "version")
			Expect(found).To(BeTrue())
			Expect(field.LineIndex).To(Equal(0))
			Expect(field.Value).To(Equal("1.0.0"))
		})

		It("ignores fields split over multiple lines", func() {
			d := descriptor.Descriptor{
				"<version>",
				"1.0.0",
				"</version>",
			}
			_, found := descriptor.FindFirst(d, "version")
			Expect(found).To(BeFalse())
		})

		It("ignores fields with other names", func() {
			d := descriptor.Descriptor{
				"<spring.version>5.0.0</spring.version>",
			}
			_, found := descriptor.FindFirst(d, "version")
			Expect(found).To(BeFalse())
		})

		It("finds fields with dots in the name", func() {
			d := descriptor.Descriptor{
				"<spring.version>5.0.0</spring.version>",
			}
			field, found := descriptor.FindFirst(d, "spring.version")
			Expect(found).To(BeTrue())
			Expect(field.Value).To(Equal("5.0.0"))
		})

		It("returns not found for missing fields", func() {
			d := descriptor.Descriptor{"<project>", "</project>"}
			_, found := descriptor.FindFirst(d, "version")
			Expect(found).To(BeFalse())
		})
	})

	Describe("FindFirstAfter", func() {
		It("skips occurrences before the anchor", func() {
			d := descriptor.Descriptor{
				"  <parent>",
				"    <version>2.1.0</version>",
				"  </parent>",
				"  <artifactId>my-service</artifactId>",
				"  <version>1.0.4-SNAPSHOT</version>",
			}
			field, found := descriptor.FindFirstAfter(d, "artifactId", "version")
			Expect(found).To(BeTrue())
			Expect(field.LineIndex).To(Equal(4))
			Expect(field.Value).To(Equal("1.0.4-SNAPSHOT"))
		})

		It("starts strictly after the anchor line", func() {
			d := descriptor.Descriptor{
				"<artifactId>x</artifactId><version>1.0.0</version>",
				"<version>2.0.0</version>",
			}
			field, found := descriptor.FindFirstAfter(d, "artifactId", "version")
			Expect(found).To(BeTrue())
			Expect(field.Value).To(Equal("2.0.0"))
		})

		It("returns not found when the anchor is missing", func() {
			d := descriptor.Descriptor{
				"<version>1.0.0</version>",
			}
			_, found := descriptor.FindFirstAfter(d, "artifactId", "version")
			Expect(found).To(BeFalse())
		})

		It("returns not found when the field only occurs before the anchor", func() {
			d := descriptor.Descriptor{
				"<version>1.0.0</version>",
				"<artifactId>x</artifactId>",
			}
			_, found := descriptor.FindFirstAfter(d, "artifactId", "version")
			Expect(found).To(BeFalse())
		})
	})
})
