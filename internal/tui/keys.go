package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	loadFolder   key.Binding
	loadDocument key.Binding
	save         key.Binding
	nextField    key.Binding
	prevField    key.Binding
	nextPicture  key.Binding
	prevPicture  key.Binding
	copy         key.Binding
	help         key.Binding
	buildInfo    key.Binding
	quit         key.Binding

	enter     key.Binding
	esc       key.Binding
	yes       key.Binding
	no        key.Binding
	pickerCwd key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		loadFolder:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "load folder")),
		loadDocument: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "load metadata")),
		save:         key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save metadata")),
		nextField:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prevField:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		nextPicture:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next picture")),
		prevPicture:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "previous picture")),
		copy:         key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy field")),
		help:         key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		buildInfo:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "about")),
		quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		enter:     key.NewBinding(key.WithKeys("enter")),
		esc:       key.NewBinding(key.WithKeys("esc")),
		yes:       key.NewBinding(key.WithKeys("y", "Y")),
		no:        key.NewBinding(key.WithKeys("n", "N")),
		pickerCwd: key.NewBinding(key.WithKeys("ctrl+o")),
	}
}

// ShortHelp implements help.KeyMap. Disabled bindings are hidden by the
// help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.loadFolder, k.loadDocument, k.save, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.loadFolder, k.loadDocument, k.save},
		{k.nextField, k.prevField, k.nextPicture, k.prevPicture},
		{k.copy, k.help, k.buildInfo, k.quit},
	}
}
