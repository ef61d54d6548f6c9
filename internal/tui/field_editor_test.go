package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpliceEdit(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		before string
		after  string
		want   string
	}{
		{
			name:   "append after tab",
			raw:    "a\tb",
			before: "a    b",
			after:  "a    b!",
			want:   "a\tb!",
		},
		{
			name:   "insert before tab",
			raw:    "a\tb",
			before: "a    b",
			after:  "xa    b",
			want:   "xa\tb",
		},
		{
			name:   "newlines kept",
			raw:    "line1\nline2",
			before: "line1\nline2",
			after:  "line1\nline2!",
			want:   "line1\nline2!",
		},
		{
			name:   "edit inside tab replaces only the tab",
			raw:    "a\tb\tc",
			before: "a    b    c",
			after:  "a   b    c",
			want:   "a   b\tc",
		},
		{
			name:   "carriage return kept",
			raw:    "a\r\nb",
			before: "a\n\nb",
			after:  "a\n\nbc",
			want:   "a\r\nbc",
		},
		{
			name:   "dropped control character kept",
			raw:    "a\x01b",
			before: "ab",
			after:  "aXb",
			want:   "a\x01Xb",
		},
		{
			name:   "delete whole value",
			raw:    "x\ty",
			before: "x    y",
			after:  "",
			want:   "",
		},
		{
			name:   "buffer not derived from raw",
			raw:    "other",
			before: "abc",
			after:  "abcd",
			want:   "abcd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spliceEdit(tt.raw, tt.before, tt.after))
		})
	}
}

func TestFieldEditor_KeepsRawTextAcrossEdits(t *testing.T) {
	e := newFieldEditor("Headline", 40, 1)
	e.SetValue("line1\nline2\tTab")
	e.Focus()

	e, _, changed := e.Update(runes("!"))
	require.True(t, changed)
	assert.Equal(t, "line1\nline2\tTab!", e.Value())

	e, _, changed = e.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.True(t, changed)
	assert.Equal(t, "line1\nline2\tTab", e.Value())
}

func TestFieldEditor_CursorMoveIsNoChange(t *testing.T) {
	e := newFieldEditor("Description", 40, 3)
	e.SetValue("a\tb")
	e.Focus()

	e, _, changed := e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, changed)
	assert.Equal(t, "a\tb", e.Value())
}
