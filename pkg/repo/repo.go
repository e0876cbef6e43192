// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repo

import (
	"context"
	"os"
	"strings"

	"github.com/bborbe/errors"
)

// Repository identifies one repository to process.
type Repository struct {
	URL  string
	Name string
}

// Load reads an ordered repository list from a text file. Blank lines
// and lines starting with '#' are ignored; entries are
// whitespace-trimmed. The order in the file is the processing order.
func Load(ctx context.Context, path string) ([]Repository, error) {
	// #nosec G304 -- path comes from the validated config
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "read repository list %s", path)
	}

	var repositories []Repository
	for _, line := range strings.Split(string(content), "\n") {
		url := strings.TrimSpace(line)
		if url == "" || strings.HasPrefix(url, "#") {
			continue
		}
		repositories = append(repositories, Repository{
			URL:  url,
			Name: nameFromURL(url),
		})
	}

	return repositories, nil
}

// nameFromURL derives the repository name from the last path segment
// of a clone URL, for both https and scp-style ssh URLs.
func nameFromURL(url string) string {
	name := strings.TrimSuffix(url, ".git")
	name = strings.TrimSuffix(name, "/")
	if idx := strings.LastIndexAny(name, "/:"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
