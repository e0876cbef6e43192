// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import (
	"regexp"
	"strings"
)

// Field is a located single-line field occurrence.
type Field struct {
	LineIndex int
	Value     string
}

// fieldRe matches "<name>value</name>" on a single line. Multi-line
// field values are never matched: single-line fields only.
func fieldRe(fieldName string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(fieldName)
	return regexp.MustCompile(`<` + quoted + `>([^<]+)</` + quoted + `>`)
}

// FindFirst scans lines top-to-bottom and returns the first line
// containing the named field with opening and closing marker on that
// one line, together with the extracted inner text.
func FindFirst(d Descriptor, fieldName string) (Field, bool) {
	return findFrom(d, 0, fieldName)
}

// FindFirstAfter returns the first occurrence of fieldName on a line
// strictly after the first line containing anchorFieldName's opening
// marker. Used to tell the project's own version field apart from
// same-named dependency fields elsewhere in the document.
func FindFirstAfter(d Descriptor, anchorFieldName string, fieldName string) (Field, bool) {
	anchorMarker := "<" + anchorFieldName + ">"
	for i, line := range d {
		if strings.Contains(line, anchorMarker) {
			return findFrom(d, i+1, fieldName)
		}
	}
	return Field{}, false
}

func findFrom(d Descriptor, start int, fieldName string) (Field, bool) {
	re := fieldRe(fieldName)
	for i := start; i < len(d); i++ {
		if matches := re.FindStringSubmatch(d[i]); matches != nil {
			return Field{
				LineIndex: i,
				Value:     matches[1],
			}, true
		}
	}
	return Field{}, false
}
