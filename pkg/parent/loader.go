// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parent

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/bborbe/errors"

	"github.com/bborbe/pom-updater/pkg/descriptor"
)

// Loader loads the authoritative parent descriptor. It is consulted
// at most once per run, and only when some tag update has no
// configured target value.
//
//counterfeiter:generate -o ../../mocks/parent-loader.go --fake-name ParentLoader . Loader
type Loader interface {
	Load(ctx context.Context) (descriptor.Descriptor, error)
}

// NewLoader creates a Loader for the given source: an http(s)
// URL or a local file path.
func NewLoader(source string) Loader {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return &httpLoader{
			url: source,
		}
	}
	return &fileLoader{
		path: source,
	}
}

// fileLoader implements Loader from the local filesystem.
type fileLoader struct {
	path string
}

func (f *fileLoader) Load(ctx context.Context) (descriptor.Descriptor, error) {
	// #nosec G304 -- path comes from the validated config
	content, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "read parent descriptor %s", f.path)
	}
	return descriptor.FromBytes(content), nil
}

// httpLoader implements Loader over HTTP, for parent descriptors
// served from an artifact repository.
type httpLoader struct {
	url string
}

func (h *httpLoader) Load(ctx context.Context) (descriptor.Descriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "fetch parent descriptor %s", h.url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf(ctx, "fetch parent descriptor %s: status %d", h.url, resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "read response body")
	}
	return descriptor.FromBytes(content), nil
}
