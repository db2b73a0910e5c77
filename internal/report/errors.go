package report

import "errors"

var (
	ErrReport         = errors.New("report")
	ErrFailedToEncode = errors.New("failed to encode report")
	ErrFailedToWrite  = errors.New("failed to write report")
)
