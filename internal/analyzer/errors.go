package analyzer

import (
	"errors"
	"io/fs"
)

// ErrNotAFile is returned when the log path names a directory or other non-regular file
var ErrNotAFile = errors.New("not a regular file")

// Error codes surfaced for file-level failures
const (
	CodeFileNotFound     = "FILE_NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeNotAFile         = "NOT_A_FILE"
	CodeReadError        = "READ_ERROR"
)

// FileError is a fatal failure to open or read the log file.
// Per-line problems never produce a FileError.
type FileError struct {
	Op   string // open, stat, read or decompress
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error { return e.Err }

// Code returns a machine-readable code for the failure
func (e *FileError) Code() string {
	switch {
	case errors.Is(e.Err, fs.ErrNotExist):
		return CodeFileNotFound
	case errors.Is(e.Err, fs.ErrPermission):
		return CodePermissionDenied
	case errors.Is(e.Err, ErrNotAFile):
		return CodeNotAFile
	default:
		return CodeReadError
	}
}
