package dispatcher

import "errors"

var (
	ErrDispatcher                = errors.New("dispatcher")
	ErrFailedToCreateDestination = errors.New("failed to create destination directory")
	ErrInterrupted               = errors.New("run interrupted")
	ErrWorkerLost                = errors.New("worker process lost")
	ErrTaskTimedOut              = errors.New("task timed out")
	ErrTaskCancelled             = errors.New("cancelled")
)
