package worker

import "errors"

var (
	ErrWorker              = errors.New("worker")
	ErrFailedToStart       = errors.New("failed to start worker process")
	ErrFailedToDispense    = errors.New("failed to dispense converter")
	ErrUnexpectedConverter = errors.New("worker returned unexpected converter type")
	ErrCallFailed          = errors.New("worker call failed")
	ErrProcessExited       = errors.New("worker process exited")
)
