// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import (
	"strings"
)

// Descriptor is an ordered sequence of text lines representing a build
// descriptor file. It is never reflowed or reformatted: mutations
// return a new Descriptor and touch only the lines containing the
// target field, so an untouched descriptor round-trips byte-for-byte.
type Descriptor []string

// FromBytes splits file content into lines.
func FromBytes(content []byte) Descriptor {
	return Descriptor(strings.Split(string(content), "\n"))
}

// Bytes joins the lines back into file content. FromBytes followed by
// Bytes reproduces the input exactly, including a trailing newline.
func (d Descriptor) Bytes() []byte {
	return []byte(strings.Join(d, "\n"))
}

// Copy returns an independent copy of the descriptor.
func (d Descriptor) Copy() Descriptor {
	result := make(Descriptor, len(d))
	copy(result, d)
	return result
}
