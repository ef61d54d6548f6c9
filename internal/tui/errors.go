// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"io/fs"

	"github.com/MKhiriev/go-photo-annotator/internal/adapter"
	"github.com/MKhiriev/go-photo-annotator/internal/document"
)

// isCancel reports whether err only means the user backed out.
func isCancel(err error) bool {
	return errors.Is(err, adapter.ErrCanceled) || errors.Is(err, context.Canceled)
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, document.ErrMalformedDocument):
		return "Not a metadata document: " + err.Error()
	case errors.Is(err, adapter.ErrNotDirectory):
		return "Please choose a folder, not a file"
	case errors.Is(err, adapter.ErrUnsupportedType):
		return "Only .json metadata documents can be opened"
	case errors.Is(err, fs.ErrNotExist):
		return "File or folder does not exist"
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied: " + err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "The operation timed out"
	}

	return err.Error()
}
