package configuration

import "errors"

var (
	ErrConfiguration       = errors.New("configuration")
	ErrCantReadConfigFile  = errors.New("can't read config file")
	ErrCantParseConfigFile = errors.New("can't parse config file")
	ErrCantParseFlags      = errors.New("can't parse command line flags")
	ErrTooManyArguments    = errors.New("too many positional arguments")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidTaskTimeout  = errors.New("invalid task timeout")
	ErrInvalidParallel     = errors.New("parallel workers count can't be negative")
)
