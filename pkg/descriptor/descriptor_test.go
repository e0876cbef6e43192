// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pom-updater/pkg/descriptor"
)

var _ = Describe("Descriptor", func() {
	Describe("FromBytes and Bytes", func() {
		It("round-trips content byte-for-byte", func() {
			content := []byte("<project>\n  <version>1.0.0</version>\n</project>\n")
			d := descriptor.FromBytes(content)
			Expect(d.Bytes()).To(Equal(content))
		})

		It("round-trips content without trailing newline", func() {
			content := []byte("<version>1.0.0</version>")
			d := descriptor.FromBytes(content)
			Expect(d.Bytes()).To(Equal(content))
		})

		It("round-trips empty content", func() {
			d := descriptor.FromBytes([]byte(""))
			Expect(d.Bytes()).To(Equal([]byte("")))
		})
	})

	Describe("Copy", func() {
		It("returns an independent copy", func() {
			d := descriptor.Descriptor{"a", "b"}
			c := d.Copy()
			c[0] = "changed"
			Expect(d[0]).To(Equal("a"))
		})
	})
})
