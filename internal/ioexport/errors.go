package ioexport

import (
	"fmt"

	"github.com/gedtk/gedtree/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateFileError creates an error for an export target that cannot
// be created.
func CreateFileError(path string, err error) error {
	msg := `Cannot create export target

<em>Path:</em> %s

<em>How to fix:</em>
  1. Check the directory exists and is writable
  2. Check available disk space`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportCreateFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to create export target: %w", err),
	}
}

// WriteError creates an error for a failed write during export.
func WriteError(path string, err error) error {
	msg := `Failed writing export data to <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to write export data: %w", err),
	}
}

// SQLiteOpenError creates an error for a SQLite database that cannot
// be opened.
func SQLiteOpenError(path string, err error) error {
	msg := `Cannot open SQLite database

<em>Path:</em> %s

<em>Possible causes:</em>
  - Directory does not exist
  - File is not a SQLite database
  - Permission denied`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ExportSQLiteOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open SQLite database: %w", err),
	}
}

// SQLiteExecError creates an error for a failed SQLite statement.
func SQLiteExecError(operation string, err error) error {
	msg := `SQLite export operation failed: <em>%s</em>`
	vars := []any{operation}

	return &gn.Error{
		Code: errcode.ExportSQLiteExecError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sqlite export failed at %s: %w", operation, err),
	}
}
