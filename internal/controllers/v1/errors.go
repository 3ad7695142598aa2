package v1

import "errors"

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

// Export errors
var (
	errNoDatabaseFile = errors.New("the target database is not backed by a file")
)
