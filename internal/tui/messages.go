package tui

import (
	"github.com/MKhiriev/go-photo-annotator/models"
)

type historyLoadedMsg struct {
	entry models.HistoryEntry
	err   error
}

type folderLoadedMsg struct {
	folder       string
	pictures     []models.Picture
	lastDocument string
	err          error
}

type documentLoadedMsg struct {
	path     string
	metadata models.Metadata
	err      error
}

type documentSavedMsg struct {
	path string
	err  error
}

type backupTickMsg struct{}

type backupDoneMsg struct {
	path    string
	version uint64
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
