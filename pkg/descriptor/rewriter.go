// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

// ReplaceAll replaces the inner text of every single-line occurrence
// of the named field, leaving markers and all surrounding text
// untouched. Fields may legitimately appear more than once.
func ReplaceAll(d Descriptor, fieldName string, newValue string) Descriptor {
	re := fieldRe(fieldName)
	replacement := "<" + fieldName + ">" + newValue + "</" + fieldName + ">"

	result := d.Copy()
	for i, line := range result {
		result[i] = re.ReplaceAllLiteralString(line, replacement)
	}
	return result
}

// ReplaceAtLine replaces only the occurrence on the given line,
// leaving every other occurrence of the same field name unchanged.
// Used for the primary-version bump, which must touch exactly one
// line even if the field name recurs elsewhere.
func ReplaceAtLine(d Descriptor, lineIndex int, fieldName string, newValue string) Descriptor {
	if lineIndex < 0 || lineIndex >= len(d) {
		return d
	}

	re := fieldRe(fieldName)
	replacement := "<" + fieldName + ">" + newValue + "</" + fieldName + ">"

	result := d.Copy()
	result[lineIndex] = re.ReplaceAllLiteralString(result[lineIndex], replacement)
	return result
}
