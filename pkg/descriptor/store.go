// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import (
	"context"
	"os"

	"github.com/bborbe/errors"
)

// Store loads and saves descriptor files. The patching engine itself
// never owns file handles.
//
//counterfeiter:generate -o ../../mocks/descriptor-store.go --fake-name DescriptorStore . Store
type Store interface {
	Load(ctx context.Context, path string) (Descriptor, error)
	Save(ctx context.Context, path string, d Descriptor) error
}

// fileStore implements Store on the local filesystem.
type fileStore struct{}

// NewStore creates a file-based Store.
func NewStore() Store {
	return &fileStore{}
}

// Load reads the descriptor file at path.
func (f *fileStore) Load(ctx context.Context, path string) (Descriptor, error) {
	// #nosec G304 -- path is derived from the configured workdir and descriptor filename
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "read descriptor %s", path)
	}
	return FromBytes(content), nil
}

// Save writes the descriptor back to path.
func (f *fileStore) Save(ctx context.Context, path string, d Descriptor) error {
	if err := os.WriteFile(path, d.Bytes(), 0600); err != nil {
		return errors.Wrapf(ctx, err, "write descriptor %s", path)
	}
	return nil
}
