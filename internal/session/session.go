// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the state of the single open annotation document:
// the ordered picture list, the metadata store and the dirty flag.
//
// A Session is owned by the controller and mutated only from its event
// loop. It is not safe for concurrent use; background work receives
// snapshots (see [Session.Snapshot]) instead of the Session itself.
//
// Every record carries a revision number. Views that cache a record
// remember the revision they copied and call [Session.Revision] to find
// out whether the upstream record changed since.
package session

import (
	"github.com/MKhiriev/go-photo-annotator/models"
)

// Session is the document context for one annotation run.
type Session struct {
	folder   string
	pictures []models.Picture

	metadata models.Metadata
	document string
	dirty    bool

	clock      uint64
	generation uint64
	revisions  map[string]uint64
}

// New returns an empty session: no folder, an empty store, not dirty.
func New() *Session {
	return &Session{
		metadata:  models.NewMetadata(),
		revisions: make(map[string]uint64),
	}
}

// Folder returns the path of the loaded folder, or "" before the first load.
func (s *Session) Folder() string {
	return s.folder
}

// FolderLoaded reports whether a folder has been loaded.
func (s *Session) FolderLoaded() bool {
	return s.folder != ""
}

// HasPictures reports whether the loaded folder holds at least one
// picture. A folder without pictures leaves nothing to annotate.
func (s *Session) HasPictures() bool {
	return len(s.pictures) > 0
}

// Pictures returns the ordered picture list. The slice is replaced, never
// modified, so callers may keep it.
func (s *Session) Pictures() []models.Picture {
	return s.pictures
}

// SetPictures replaces the folder and its picture list in one step.
// The metadata store is left alone; records for pictures that are no longer
// present become orphans.
func (s *Session) SetPictures(folder string, pictures []models.Picture) {
	s.folder = folder
	s.pictures = pictures
}

// Get returns the record for name, or the zero record if none exists.
func (s *Session) Get(name string) models.Record {
	return s.metadata.Get(name)
}

// Update writes value into field of name's record and marks the session
// dirty, even when value equals the stored value. It returns the record's
// new revision. On error nothing changes.
func (s *Session) Update(name string, field models.Field, value string) (uint64, error) {
	next, err := s.metadata.With(name, field, value)
	if err != nil {
		return s.Revision(name), err
	}

	s.clock++
	s.metadata = next
	s.revisions[name] = s.clock
	s.dirty = true
	return s.clock, nil
}

// Replace substitutes the whole store with metadata loaded from document
// and clears the dirty flag. Nothing from the previous store survives.
// Every record's revision changes, so all views resync.
func (s *Session) Replace(metadata models.Metadata, document string) {
	if metadata == nil {
		metadata = models.NewMetadata()
	}

	s.clock++
	s.generation = s.clock
	s.revisions = make(map[string]uint64)
	s.metadata = metadata
	s.document = document
	s.dirty = false
}

// Revision returns a number that changes whenever the record for name is
// updated or the whole store is replaced.
func (s *Session) Revision(name string) uint64 {
	if rev, ok := s.revisions[name]; ok && rev > s.generation {
		return rev
	}
	return s.generation
}

// Snapshot returns the current store. Stores are never mutated in place,
// so the snapshot stays valid after further edits.
func (s *Session) Snapshot() models.Metadata {
	return s.metadata
}

// Dirty reports whether there were edits since the last document load.
// Saving does not clear it.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Document returns the path of the last document loaded or saved.
func (s *Session) Document() string {
	return s.document
}

// SetDocument records the path a document was saved to. The dirty flag
// is not touched.
func (s *Session) SetDocument(path string) {
	s.document = path
}

// Orphans lists stored filenames with no loaded picture.
func (s *Session) Orphans() []string {
	return s.metadata.Orphans(s.pictures)
}

// Version returns a counter that changes on every Update and Replace.
func (s *Session) Version() uint64 {
	return s.clock
}
