package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-annotator/models"
)

const (
	defaultRecordWidth = 60
	headlineHeight     = 1
	descriptionHeight  = 3
)

// recordSource is the upstream a record view edits. *session.Session
// implements it.
type recordSource interface {
	Get(name string) models.Record
	Revision(name string) uint64
	Update(name string, field models.Field, value string) (uint64, error)
}

// recordView edits the metadata of one picture. It keeps a local copy of
// the record and overwrites it whenever the upstream revision moves past
// the one it last saw.
type recordView struct {
	picture     models.Picture
	headline    fieldEditor
	description fieldEditor
	focus       models.Field

	seen   uint64
	synced bool
}

func newRecordView(picture models.Picture, width int) recordView {
	if width <= 0 {
		width = defaultRecordWidth
	}

	return recordView{
		picture:     picture,
		headline:    newFieldEditor("Headline", width, headlineHeight),
		description: newFieldEditor("Description", width, descriptionHeight),
	}
}

func (v recordView) name() string {
	return v.picture.Name
}

// Sync copies the upstream record into the inputs if it changed since the
// last sync. Reports whether a resync happened.
func (v *recordView) Sync(src recordSource) bool {
	rev := src.Revision(v.name())
	if v.synced && rev == v.seen {
		return false
	}

	rec := src.Get(v.name())
	v.headline.SetValue(rec.Headline)
	v.description.SetValue(rec.Description)
	v.seen = rev
	v.synced = true
	return true
}

func (v *recordView) Focus(field models.Field) tea.Cmd {
	v.focus = field
	switch field {
	case models.FieldHeadline:
		v.description.Blur()
		return v.headline.Focus()
	case models.FieldDescription:
		v.headline.Blur()
		return v.description.Focus()
	}
	return nil
}

func (v *recordView) Blur() {
	v.focus = ""
	v.headline.Blur()
	v.description.Blur()
}

func (v recordView) Focused() bool {
	return v.focus != ""
}

// Value returns the text of field as it is stored upstream.
func (v recordView) Value(field models.Field) string {
	if field == models.FieldDescription {
		return v.description.Value()
	}
	return v.headline.Value()
}

func (v *recordView) SetWidth(width int) {
	if width <= 0 {
		return
	}
	v.headline.SetWidth(width)
	v.description.SetWidth(width)
}

// Update forwards msg to the focused input. When the buffer changes the
// new value is written upstream and the view adopts the returned revision,
// so its own edit does not trigger a resync.
func (v recordView) Update(msg tea.Msg, src recordSource) (recordView, tea.Cmd, error) {
	if v.focus == "" {
		return v, nil, nil
	}

	var (
		cmd     tea.Cmd
		changed bool
	)
	switch v.focus {
	case models.FieldHeadline:
		v.headline, cmd, changed = v.headline.Update(msg)
	case models.FieldDescription:
		v.description, cmd, changed = v.description.Update(msg)
	}
	if !changed {
		return v, cmd, nil
	}

	after := v.Value(v.focus)
	rev, err := src.Update(v.name(), v.focus, after)
	if err != nil {
		return v, cmd, err
	}
	v.seen = rev
	return v, cmd, nil
}

func (v recordView) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.picture.Name))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(formatSize(v.picture.Size)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("headline"))
	b.WriteString("\n")
	b.WriteString(v.headline.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("description"))
	b.WriteString("\n")
	b.WriteString(v.description.View())

	if v.Focused() {
		return recordFocusedStyle.Render(b.String())
	}
	return recordStyle.Render(b.String())
}
