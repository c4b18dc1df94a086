package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Parse errors
	ParseFileReadError
	ParseCancelledError

	// Export errors
	ExportCreateFileError
	ExportWriteError
	ExportSQLiteOpenError
	ExportSQLiteExecError

	// Query errors
	QueryIndividualNotFoundError
)
