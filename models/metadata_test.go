// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Get ──────────────────────────────────────────────────────────────────────

func TestMetadata_Get_DefaultRecord(t *testing.T) {
	m := NewMetadata()
	assert.Equal(t, Record{}, m.Get("never-written.jpg"))
	assert.False(t, m.Has("never-written.jpg"))

	var nilStore Metadata
	assert.Equal(t, Record{}, nilStore.Get("x.jpg"))
}

// ── With ─────────────────────────────────────────────────────────────────────

func TestMetadata_With_CreatesDefaultedRecord(t *testing.T) {
	m, err := NewMetadata().With("a.jpg", FieldHeadline, "Hello")
	require.NoError(t, err)

	assert.True(t, m.Has("a.jpg"))
	assert.Equal(t, Record{Headline: "Hello", Description: ""}, m.Get("a.jpg"))
}

func TestMetadata_With_Isolation(t *testing.T) {
	base := Metadata{
		"a.jpg": {Headline: "A", Description: "desc A"},
		"b.jpg": {Headline: "B", Description: "desc B"},
	}

	got, err := base.With("a.jpg", FieldHeadline, "new A")
	require.NoError(t, err)

	assert.Equal(t, "desc A", got.Get("a.jpg").Description, "sibling field must not change")
	assert.Equal(t, base.Get("b.jpg"), got.Get("b.jpg"), "other files must not change")
}

func TestMetadata_With_DoesNotMutateReceiver(t *testing.T) {
	base := Metadata{"a.jpg": {Headline: "A"}}

	got, err := base.With("a.jpg", FieldHeadline, "changed")
	require.NoError(t, err)

	assert.Equal(t, "A", base.Get("a.jpg").Headline)
	assert.Equal(t, "changed", got.Get("a.jpg").Headline)
}

func TestMetadata_With_UnknownField(t *testing.T) {
	base := Metadata{"a.jpg": {Headline: "A"}}

	got, err := base.With("a.jpg", Field("caption"), "x")
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, base, got)
}

// ── Names / Orphans / Equal ──────────────────────────────────────────────────

func TestMetadata_Names_Sorted(t *testing.T) {
	m := Metadata{"c.jpg": {}, "a.jpg": {}, "B.jpg": {}}
	assert.Equal(t, []string{"B.jpg", "a.jpg", "c.jpg"}, m.Names())
}

func TestMetadata_Orphans(t *testing.T) {
	m := Metadata{"a.jpg": {}, "gone.jpg": {}, "old.jpg": {}}
	pictures := []Picture{{Name: "a.jpg"}, {Name: "b.jpg"}}

	assert.Equal(t, []string{"gone.jpg", "old.jpg"}, m.Orphans(pictures))
	assert.Empty(t, Metadata{"a.jpg": {}}.Orphans(pictures))
}

func TestMetadata_Equal(t *testing.T) {
	a := Metadata{"a.jpg": {Headline: "x"}}
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b["a.jpg"] = Record{Headline: "y"}
	assert.False(t, a.Equal(b))

	var nilStore Metadata
	assert.True(t, nilStore.Equal(NewMetadata()))
}
