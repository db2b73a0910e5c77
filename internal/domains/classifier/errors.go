package classifier

import "errors"

var (
	ErrClassifier            = errors.New("classifier")
	ErrInputDirectoryMissing = errors.New("input directory does not exist")
	ErrInputIsNotDirectory   = errors.New("input path is not a directory")
	ErrFailedToReadDirectory = errors.New("failed to read input directory")
)
