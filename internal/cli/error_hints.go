package cli

import (
	"github.com/vburojevic/reqlog/internal/analyzer"
)

func hintForFileError(err *analyzer.FileError) string {
	if err == nil {
		return ""
	}

	switch err.Code() {
	case analyzer.CodeFileNotFound:
		return "Check the path; relative paths resolve from the current directory"
	case analyzer.CodePermissionDenied:
		return "Make the file readable by the current user"
	case analyzer.CodeNotAFile:
		return "Pass a single JSONL file, not a directory"
	}

	if err.Op == "decompress" {
		return "The file looks compressed but the stream is damaged; try decompressing it by hand"
	}
	return ""
}
