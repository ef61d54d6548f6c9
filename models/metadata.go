// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"slices"
)

// Metadata maps a picture filename to its [Record].
//
// Metadata is treated as an immutable value: every write goes through
// [Metadata.With], which returns a new map and leaves the receiver intact.
// A snapshot handed to a background command therefore never changes under
// its reader.
//
// Keys are not tied to the currently loaded pictures. A document may carry
// records for files that are not in the folder; such orphans are kept and
// simply have no picture to show them.
type Metadata map[string]Record

// NewMetadata returns an empty store.
func NewMetadata() Metadata {
	return Metadata{}
}

// Get returns the record stored for name, or the zero [Record] when none
// exists. Get never fails.
func (m Metadata) Get(name string) Record {
	return m[name]
}

// Has reports whether a record was written or loaded for name.
func (m Metadata) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// With returns a copy of m in which field f of name's record is set to
// value. A missing record is created from the zero value first. Other
// records are shared with m unchanged.
func (m Metadata) With(name string, f Field, value string) (Metadata, error) {
	rec, err := m.Get(name).With(f, value)
	if err != nil {
		return m, err
	}

	out := m.Clone()
	out[name] = rec
	return out, nil
}

// Clone returns a shallow copy of m. Records are values so the copy is
// independent of m. A nil receiver yields an empty, non-nil store.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m)+1)
	maps.Copy(out, m)
	return out
}

// Names returns the stored filenames in ascending order.
func (m Metadata) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// Orphans returns the stored filenames that have no matching picture,
// in ascending order.
func (m Metadata) Orphans(pictures []Picture) []string {
	loaded := make(map[string]struct{}, len(pictures))
	for _, p := range pictures {
		loaded[p.Name] = struct{}{}
	}

	var out []string
	for _, name := range m.Names() {
		if _, ok := loaded[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// Equal reports whether m and other hold the same records.
func (m Metadata) Equal(other Metadata) bool {
	return maps.Equal(m, other)
}
