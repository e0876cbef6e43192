// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version_test

import (
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pom-updater/pkg/version"
)

var _ = Describe("Version", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("ParseVersion", func() {
		Context("with valid versions", func() {
			It("parses 1.0.4", func() {
				v, err := version.ParseVersion(ctx, "1.0.4")
				Expect(err).To(BeNil())
				Expect(v.Major).To(Equal(1))
				Expect(v.Minor).To(Equal(0))
				Expect(v.Patch).To(Equal(4))
				Expect(v.Suffix).To(Equal(""))
			})

			It("parses 1.0.4-SNAPSHOT", func() {
				v, err := version.ParseVersion(ctx, "1.0.4-SNAPSHOT")
				Expect(err).To(BeNil())
				Expect(v.Major).To(Equal(1))
				Expect(v.Minor).To(Equal(0))
				Expect(v.Patch).To(Equal(4))
				Expect(v.Suffix).To(Equal("SNAPSHOT"))
			})

			It("parses 10.20.30", func() {
				v, err := version.ParseVersion(ctx, "10.20.30")
				Expect(err).To(BeNil())
				Expect(v.Major).To(Equal(10))
				Expect(v.Minor).To(Equal(20))
				Expect(v.Patch).To(Equal(30))
			})

			It("keeps everything after the first dash as suffix", func() {
				v, err := version.ParseVersion(ctx, "2.3.4-rc-1")
				Expect(err).To(BeNil())
				Expect(v.Suffix).To(Equal("rc-1"))
			})
		})

		Context("with invalid versions", func() {
			It("returns ErrNotAVersion for 1.2", func() {
				_, err := version.ParseVersion(ctx, "1.2")
				Expect(stderrors.Is(err, version.ErrNotAVersion)).To(BeTrue())
			})

			It("returns ErrNotAVersion for 1.2.x", func() {
				_, err := version.ParseVersion(ctx, "1.2.x")
				Expect(stderrors.Is(err, version.ErrNotAVersion)).To(BeTrue())
			})

			It("returns ErrNotAVersion for 1.2.3.4", func() {
				_, err := version.ParseVersion(ctx, "1.2.3.4")
				Expect(stderrors.Is(err, version.ErrNotAVersion)).To(BeTrue())
			})

			It("returns ErrNotAVersion when a component overflows int", func() {
				_, err := version.ParseVersion(ctx, "99999999999999999999.2.3")
				Expect(stderrors.Is(err, version.ErrNotAVersion)).To(BeTrue())
			})

			It("returns ErrNotAVersion for empty string", func() {
				_, err := version.ParseVersion(ctx, "")
				Expect(stderrors.Is(err, version.ErrNotAVersion)).To(BeTrue())
			})

			It("returns ErrNotAVersion for trailing dash", func() {
				_, err := version.ParseVersion(ctx, "1.2.3-")
				Expect(stderrors.Is(err, version.ErrNotAVersion)).To(BeTrue())
			})

			It("returns ErrNotAVersion for v-prefixed tag", func() {
				_, err := version.ParseVersion(ctx, "v1.2.3")
				Expect(stderrors.Is(err, version.ErrNotAVersion)).To(BeTrue())
			})
		})
	})

	Describe("String", func() {
		It("round-trips plain versions", func() {
			for _, text := range []string{"0.0.1", "1.0.4", "10.20.30"} {
				v, err := version.ParseVersion(ctx, text)
				Expect(err).To(BeNil())
				Expect(v.String()).To(Equal(text))
			}
		})

		It("round-trips suffixed versions", func() {
			for _, text := range []string{"1.0.4-SNAPSHOT", "2.3.4-rc-1", "0.1.0-beta"} {
				v, err := version.ParseVersion(ctx, text)
				Expect(err).To(BeNil())
				Expect(v.String()).To(Equal(text))
			}
		})
	})

	Describe("BumpPatch", func() {
		It("increments patch and forces SNAPSHOT suffix", func() {
			v := version.Version{Major: 1, Minor: 0, Patch: 4, Suffix: "SNAPSHOT"}
			Expect(v.BumpPatch().String()).To(Equal("1.0.5-SNAPSHOT"))
		})

		It("forces SNAPSHOT even on bare versions", func() {
			v := version.Version{Major: 2, Minor: 1, Patch: 0}
			Expect(v.BumpPatch().String()).To(Equal("2.1.1-SNAPSHOT"))
		})

		It("forces SNAPSHOT on other suffixes", func() {
			v := version.Version{Major: 1, Minor: 2, Patch: 3, Suffix: "rc-1"}
			bumped := v.BumpPatch()
			Expect(bumped.Suffix).To(Equal("SNAPSHOT"))
			Expect(bumped.Major).To(Equal(1))
			Expect(bumped.Minor).To(Equal(2))
			Expect(bumped.Patch).To(Equal(4))
		})
	})
})
