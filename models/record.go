// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Field names one editable attribute of a [Record].
// The string value is also the key used in the metadata document.
type Field string

const (
	// FieldHeadline is the short title shown above a picture.
	FieldHeadline Field = "headline"

	// FieldDescription is the free-form text describing a picture.
	FieldDescription Field = "description"
)

// Fields lists every editable field in display order.
var Fields = []Field{FieldHeadline, FieldDescription}

// ParseField converts a document key or UI name into a [Field].
// Returns [ErrUnknownField] for anything other than headline or description.
func ParseField(name string) (Field, error) {
	switch Field(name) {
	case FieldHeadline, FieldDescription:
		return Field(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Record is the text metadata attached to a single picture.
//
// The zero value is the default record: a picture without a stored record
// reads as Record{} and both fields are empty strings.
type Record struct {
	// Headline is a short title for the picture.
	Headline string `json:"headline"`

	// Description is the longer text for the picture. It may contain
	// several paragraphs separated by blank lines.
	Description string `json:"description"`
}

// Value returns the current value of f. Unknown fields read as "".
func (r Record) Value(f Field) string {
	switch f {
	case FieldHeadline:
		return r.Headline
	case FieldDescription:
		return r.Description
	default:
		return ""
	}
}

// With returns a copy of r where only f is set to value.
// The sibling field is left untouched.
func (r Record) With(f Field, value string) (Record, error) {
	switch f {
	case FieldHeadline:
		r.Headline = value
	case FieldDescription:
		r.Description = value
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	return r, nil
}

// IsZero reports whether both fields are empty.
func (r Record) IsZero() bool {
	return r.Headline == "" && r.Description == ""
}
