package service

import "errors"

var (
	ErrNoFolder       = errors.New("no folder given")
	ErrNoDocumentPath = errors.New("no document path given")
	ErrNoBackupDir    = errors.New("backup directory is not configured")
)
