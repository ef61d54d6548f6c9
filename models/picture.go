// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Picture identifies one image file in the loaded folder.
//
// Name is the identity used as the metadata key. Path, Size and ModTime
// are an opaque content reference used for display only; the image bytes
// are never read or modified.
type Picture struct {
	// Name is the base filename, unique within a folder.
	Name string

	// Path is the absolute path of the file on disk.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the file's last modification time.
	ModTime time.Time
}
