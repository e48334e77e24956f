package mdtablefix

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadFile  = errors.New("failed to read markdown file")
	ErrWriteFile = errors.New("failed to write markdown file")
)
