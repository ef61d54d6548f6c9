package tui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-annotator/internal/document"
)

type pickerKind int

const (
	pickFolder pickerKind = iota
	pickDocument
)

const (
	minPickerHeight = 8
	maxPickerHeight = 18
)

func newPicker(kind pickerKind, start string, height int) (filepicker.Model, tea.Cmd) {
	fp := filepicker.New()
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = pickerHeight(height)
	fp.CurrentDirectory = pickerStartDir(start)

	switch kind {
	case pickFolder:
		fp.DirAllowed = true
		fp.FileAllowed = false
	case pickDocument:
		fp.DirAllowed = false
		fp.FileAllowed = true
		fp.AllowedTypes = []string{document.Extension}
	}

	return fp, fp.Init()
}

func pickerHeight(screen int) int {
	if screen <= 0 {
		return 12
	}
	return max(minPickerHeight, min(screen-8, maxPickerHeight))
}

// pickerStartDir returns start if it is a directory, its parent if it is a
// file, and the working directory otherwise.
func pickerStartDir(start string) string {
	if start != "" {
		if info, err := os.Stat(start); err == nil {
			if info.IsDir() {
				return start
			}
			return filepath.Dir(start)
		}
		if parent := filepath.Dir(start); dirExists(parent) {
			return parent
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
