package engine

import "errors"

var (
	ErrEngine                = errors.New("engine")
	ErrConnectDependencies   = errors.New("failed to connect dependencies")
	ErrInputDirectoryMissing = errors.New("input directory is missing")
	ErrNoEligibleFiles       = errors.New("no eligible files found")
	ErrScanFailed            = errors.New("failed to scan input directory")
)
