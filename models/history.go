package models

import "time"

// HistoryEntry remembers one annotated folder and the document last used
// with it, so that the next run can start the pickers where the user left off.
type HistoryEntry struct {
	// ID is a UUIDv7 assigned when the folder is first seen.
	ID string

	// Folder is the absolute path of the picture folder.
	Folder string

	// Document is the path of the metadata document most recently loaded
	// or saved for Folder. Empty if none yet.
	Document string

	// OpenedAt is when Folder was last loaded.
	OpenedAt time.Time

	// UpdatedAt is when the entry was last changed.
	UpdatedAt time.Time
}
