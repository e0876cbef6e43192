// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parent_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pom-updater/pkg/descriptor"
	"github.com/bborbe/pom-updater/pkg/parent"
)

var _ = Describe("Loader", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("with a file source", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "parent-test-*")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("loads the parent descriptor from disk", func() {
			path := filepath.Join(tempDir, "pom.xml")
			content := []byte("<spring.version>5.3.0</spring.version>\n")
			Expect(os.WriteFile(path, content, 0600)).To(Succeed())

			d, err := parent.NewLoader(path).Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(descriptor.FromBytes(content)))
		})

		It("returns error for a missing file", func() {
			_, err := parent.NewLoader(filepath.Join(tempDir, "missing.xml")).Load(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("with an http source", func() {
		It("loads the parent descriptor from a URL", func() {
			server := httptest.NewServer(
				http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
					_, _ = resp.Write([]byte("<spring.version>5.3.0</spring.version>\n"))
				}),
			)
			defer server.Close()

			d, err := parent.NewLoader(server.URL).Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			field, found := descriptor.FindFirst(d, "spring.version")
			Expect(found).To(BeTrue())
			Expect(field.Value).To(Equal("5.3.0"))
		})

		It("returns error for non-200 responses", func() {
			server := httptest.NewServer(
				http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
					resp.WriteHeader(http.StatusNotFound)
				}),
			)
			defer server.Close()

			_, err := parent.NewLoader(server.URL).Load(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("status 404"))
		})
	})
})
