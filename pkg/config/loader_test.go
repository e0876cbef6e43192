// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pom-updater/pkg/config"
)

var _ = Describe("Loader", func() {
	var (
		ctx        context.Context
		tempDir    string
		configPath string
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
		configPath = filepath.Join(tempDir, ".pom-updater.yaml")
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	It("returns defaults when the file does not exist", func() {
		cfg, err := config.NewLoader(configPath).Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Defaults()))
	})

	It("merges file values onto defaults", func() {
		content := `
workflow: pr
bumpVersion: true
tags:
  - name: spring.version
    value: 5.3.0
  - name: jackson.version
`
		Expect(os.WriteFile(configPath, []byte(content), 0600)).To(Succeed())

		cfg, err := config.NewLoader(configPath).Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Workflow).To(Equal(config.WorkflowPR))
		Expect(cfg.BumpVersion).To(BeTrue())
		Expect(cfg.Tags).To(Equal([]config.TagUpdate{
			{Name: "spring.version", Value: "5.3.0"},
			{Name: "jackson.version"},
		}))
		// untouched fields keep their defaults
		Expect(cfg.ReposFile).To(Equal("repos.txt"))
		Expect(cfg.DescriptorFile).To(Equal("pom.xml"))
	})

	It("preserves tag order from the file", func() {
		content := `
tags:
  - name: c.version
    value: "3"
  - name: a.version
    value: "1"
  - name: b.version
    value: "2"
`
		Expect(os.WriteFile(configPath, []byte(content), 0600)).To(Succeed())

		cfg, err := config.NewLoader(configPath).Load(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Tags[0].Name).To(Equal("c.version"))
		Expect(cfg.Tags[1].Name).To(Equal("a.version"))
		Expect(cfg.Tags[2].Name).To(Equal("b.version"))
	})

	It("fails for invalid YAML", func() {
		Expect(os.WriteFile(configPath, []byte("workflow: [broken"), 0600)).To(Succeed())
		_, err := config.NewLoader(configPath).Load(ctx)
		Expect(err).To(HaveOccurred())
	})

	It("fails validation for bad values", func() {
		Expect(os.WriteFile(configPath, []byte("workflow: banana"), 0600)).To(Succeed())
		_, err := config.NewLoader(configPath).Load(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("workflow"))
	})
})
