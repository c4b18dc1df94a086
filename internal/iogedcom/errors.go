package iogedcom

import (
	"fmt"

	"github.com/gedtk/gedtree/pkg/errcode"
	"github.com/gnames/gn"
)

// FileReadError creates an error for an unreadable GEDCOM source.
// This is the parser's only fatal condition: there is nothing to
// parse.
func FileReadError(path string, err error) error {
	msg := `Cannot read GEDCOM file

<em>File path:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Permission denied

<em>How to fix:</em>
  1. Check the path for typos
  2. Check file permissions`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ParseFileReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read GEDCOM file: %w", err),
	}
}

// CancelledError creates an error for a cancelled load.
func CancelledError(err error) error {
	msg := "GEDCOM load was cancelled"

	return &gn.Error{
		Code: errcode.ParseCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}
