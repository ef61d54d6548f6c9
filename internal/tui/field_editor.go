package tui

import (
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// tabWidth is how many spaces the textarea shows for a tab.
const tabWidth = 4

// fieldEditor is a textarea that remembers the text it was loaded with.
// The textarea shows tabs as spaces and drops control characters, so its
// buffer is only a rendering; edits are applied to the raw text as a
// splice, leaving everything outside the edited span untouched.
type fieldEditor struct {
	area textarea.Model
	raw  string
}

func newFieldEditor(placeholder string, width, height int) fieldEditor {
	area := textarea.New()
	area.Placeholder = placeholder
	area.CharLimit = 0
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.SetWidth(width)
	area.SetHeight(height)

	return fieldEditor{area: area}
}

func (e *fieldEditor) SetValue(raw string) {
	e.area.SetValue(raw)
	e.raw = raw
}

// Value returns the raw text, not the rendered buffer.
func (e fieldEditor) Value() string {
	return e.raw
}

// Update forwards msg to the textarea and reports whether the text changed.
func (e fieldEditor) Update(msg tea.Msg) (fieldEditor, tea.Cmd, bool) {
	before := e.area.Value()

	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)

	after := e.area.Value()
	if after == before {
		return e, cmd, false
	}

	e.raw = spliceEdit(e.raw, before, after)
	return e, cmd, true
}

func (e *fieldEditor) Focus() tea.Cmd {
	return e.area.Focus()
}

func (e *fieldEditor) Blur() {
	e.area.Blur()
}

func (e fieldEditor) Focused() bool {
	return e.area.Focused()
}

func (e *fieldEditor) SetWidth(width int) {
	e.area.SetWidth(width)
}

func (e fieldEditor) View() string {
	return e.area.View()
}

// renderedWidth is the number of runes the textarea shows for r.
func renderedWidth(r rune) int {
	switch {
	case r == utf8.RuneError:
		return 0
	case r == '\r' || r == '\n':
		return 1
	case r == '\t':
		return tabWidth
	case unicode.IsControl(r):
		return 0
	default:
		return 1
	}
}

// spliceEdit applies the difference between the rendered buffers before
// and after to raw. Runes of raw outside the edited span are kept as they
// are; a raw rune only partly covered by the edit is replaced by what the
// buffer now shows for it. If before is not a rendering of raw, after is
// returned.
func spliceEdit(raw, before, after string) string {
	r := []rune(raw)
	b := []rune(before)
	a := []rune(after)

	starts := make([]int, len(r)+1)
	for i, c := range r {
		starts[i+1] = starts[i] + renderedWidth(c)
	}
	if starts[len(r)] != len(b) {
		return after
	}

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	end := len(b) - suffix

	// [from, to) is the smallest run of raw runes covering the edited span
	// of the buffer.
	from := 0
	for from < len(r) && starts[from+1] <= prefix {
		from++
	}
	to := from
	for to < len(r) && starts[to] < end {
		to++
	}

	replacement := a[starts[from] : len(a)-(len(b)-starts[to])]
	return string(r[:from]) + string(replacement) + string(r[to:])
}
